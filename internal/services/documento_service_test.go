package services

import (
	"context"
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/baleight/AmministrazioneCondomini/internal/dtos"
	"github.com/baleight/AmministrazioneCondomini/internal/models"
	"github.com/baleight/AmministrazioneCondomini/internal/repositories"
	"github.com/baleight/AmministrazioneCondomini/internal/utils"
)

func newDocumentoService() *DocumentoService {
	return NewDocumentoService(repositories.NewDocumentoRepository(newStubStore()))
}

func TestDocumentoUpload(t *testing.T) {
	svc := newDocumentoService()
	payload := []byte("regolamento condominiale in pdf")

	created, err := svc.Upload(context.Background(), dtos.UploadDocumentoRequest{
		Nome:     "Regolamento",
		Category: "contract",
		FileName: "regolamento.pdf",
		Content:  base64.StdEncoding.EncodeToString(payload),
	})
	require.NoError(t, err)
	require.Equal(t, 1, created.ID)
	require.Equal(t, len(payload), created.SizeBytes)
	require.Equal(t, models.DocContract, created.Category)
	require.NotEmpty(t, created.UploadedAt)
}

func TestDocumentoUploadRejectsInvalidBase64(t *testing.T) {
	svc := newDocumentoService()

	_, err := svc.Upload(context.Background(), dtos.UploadDocumentoRequest{
		Nome: "X", Category: "other", FileName: "x.bin", Content: "!!!not-base64!!!",
	})
	requireAppErrorMessage(t, err, "base64")
}

func TestDocumentoUploadRejectsEmptyPayload(t *testing.T) {
	svc := newDocumentoService()

	_, err := svc.Upload(context.Background(), dtos.UploadDocumentoRequest{
		Nome: "X", Category: "other", FileName: "x.bin", Content: "",
	})
	requireAppErrorMessage(t, err, "empty")
}

func TestDocumentoUploadRejectsOversizePayload(t *testing.T) {
	svc := newDocumentoService()
	payload := make([]byte, MaxDocumentBytes+1)

	_, err := svc.Upload(context.Background(), dtos.UploadDocumentoRequest{
		Nome: "Troppo grande", Category: "other", FileName: "big.bin",
		Content: base64.StdEncoding.EncodeToString(payload),
	})
	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	require.Equal(t, http.StatusRequestEntityTooLarge, appErr.StatusCode)
	require.Equal(t, utils.ErrCodePayloadTooLarge, appErr.Code)
}

func TestDocumentoUploadAcceptsExactCap(t *testing.T) {
	svc := newDocumentoService()
	payload := make([]byte, MaxDocumentBytes)

	created, err := svc.Upload(context.Background(), dtos.UploadDocumentoRequest{
		Nome: "Al limite", Category: "other", FileName: "cap.bin",
		Content: base64.StdEncoding.EncodeToString(payload),
	})
	require.NoError(t, err)
	require.Equal(t, MaxDocumentBytes, created.SizeBytes)
}

func TestDocumentoUpdateMetadataOnly(t *testing.T) {
	svc := newDocumentoService()
	ctx := context.Background()

	created, err := svc.Upload(ctx, dtos.UploadDocumentoRequest{
		Nome: "Verbale", Category: "minutes", FileName: "verbale.pdf",
		Content: base64.StdEncoding.EncodeToString([]byte("verbale assemblea")),
	})
	require.NoError(t, err)

	nome := "Verbale 2026"
	updated, err := svc.Update(ctx, created.ID, dtos.UpdateDocumentoRequest{Nome: &nome})
	require.NoError(t, err)
	require.Equal(t, "Verbale 2026", updated.Nome)
	// The stored payload is untouched by metadata updates.
	require.Equal(t, created.Content, updated.Content)
	require.Equal(t, created.SizeBytes, updated.SizeBytes)
}

func TestDocumentoUpdateNotFound(t *testing.T) {
	svc := newDocumentoService()

	nome := "Ghost"
	_, err := svc.Update(context.Background(), 9, dtos.UpdateDocumentoRequest{Nome: &nome})
	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	require.Equal(t, 404, appErr.StatusCode)
}
