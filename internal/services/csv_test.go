package services

import (
	"strings"
	"testing"

	"github.com/baleight/AmministrazioneCondomini/internal/storage"
	"github.com/stretchr/testify/require"
)

func TestRecordsToCSVQuotesDataNotHeader(t *testing.T) {
	columns := []string{"id", "nome", "city"}
	rows := []storage.Record{
		{"id": 1, "nome": "Condominio Aurora", "city": "Milano"},
	}

	got := RecordsToCSV(columns, rows)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "id,nome,city", lines[0])
	require.Equal(t, `"1","Condominio Aurora","Milano"`, lines[1])
}

func TestRecordsToCSVEscapesEmbeddedQuotes(t *testing.T) {
	got := RecordsToCSV([]string{"nome"}, []storage.Record{
		{"nome": `Palazzo "Verdi"`},
	})
	require.Equal(t, "nome\n\"Palazzo \"\"Verdi\"\"\"", got)
}

func TestRecordsToCSVMissingFieldRendersEmpty(t *testing.T) {
	got := RecordsToCSV([]string{"nome", "email"}, []storage.Record{
		{"nome": "Aurora"},
	})
	require.Equal(t, "nome,email\n\"Aurora\",\"\"", got)
}

func TestRecordsToCSVNumericFormatting(t *testing.T) {
	got := RecordsToCSV([]string{"superficie"}, []storage.Record{
		{"superficie": 85.5},
		{"superficie": float64(70)},
	})
	require.Equal(t, "superficie\n\"85.5\"\n\"70\"", got)
}

func TestCSVToRecordsRoundTrip(t *testing.T) {
	columns := []string{"nome", "city", "units_count"}
	rows := []storage.Record{
		{"nome": "Aurora", "city": "Milano", "units_count": float64(8)},
		{"nome": "Palazzo, con virgola", "city": "Torino", "units_count": float64(12)},
	}

	parsed, err := CSVToRecords(RecordsToCSV(columns, rows))
	require.NoError(t, err)
	require.Len(t, parsed, 2)
	require.Equal(t, "Aurora", parsed[0]["nome"])
	require.Equal(t, float64(8), parsed[0]["units_count"])
	require.Equal(t, "Palazzo, con virgola", parsed[1]["nome"])
}

func TestCSVToRecordsSkipsShortRows(t *testing.T) {
	text := "nome,city\n\"Aurora\",\"Milano\"\n\"SoloNome\"\n\"Palazzo\",\"Torino\""
	parsed, err := CSVToRecords(text)
	require.NoError(t, err)
	require.Len(t, parsed, 2)
	require.Equal(t, "Aurora", parsed[0]["nome"])
	require.Equal(t, "Palazzo", parsed[1]["nome"])
}

func TestCSVToRecordsHeaderOnly(t *testing.T) {
	parsed, err := CSVToRecords("nome,city")
	require.NoError(t, err)
	require.Empty(t, parsed)

	parsed, err = CSVToRecords("")
	require.NoError(t, err)
	require.Empty(t, parsed)
}

func TestCSVToRecordsNumericCoercion(t *testing.T) {
	parsed, err := CSVToRecords("nome,superficie\n\"1A\",\"85.5\"")
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	require.Equal(t, 85.5, parsed[0]["superficie"])
	require.Equal(t, "1A", parsed[0]["nome"])
}

func TestCSVToRecordsKeepsNumericLookingStrings(t *testing.T) {
	parsed, err := CSVToRecords("telefono,codice_fiscale,units_count\n\"+390212345678\",\"01234567890\",\"8\"")
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	// The sign and the leading zero would not survive a float round
	// trip, so these cells must stay text.
	require.Equal(t, "+390212345678", parsed[0]["telefono"])
	require.Equal(t, "01234567890", parsed[0]["codice_fiscale"])
	require.Equal(t, float64(8), parsed[0]["units_count"])
}

func TestHasRequiredFields(t *testing.T) {
	rec := storage.Record{"nome": "Aurora", "city": "", "units_count": float64(8)}
	require.True(t, hasRequiredFields(rec, []string{"nome", "units_count"}))
	require.False(t, hasRequiredFields(rec, []string{"nome", "city"}))
	require.False(t, hasRequiredFields(rec, []string{"nome", "indirizzo"}))
}
