package ingestion

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlthosKal/ComunnityData/core"
)

const csvHeader = "ID,Nombre,Edad,Genero,Ciudad,Comentario,Categoria,Urgencia,Fecha,Internet,AtencionGobierno,ZonaRural\n"

func TestParseReports(t *testing.T) {
	input := csvHeader +
		"r-1,Ana,34,F,bogotá,No hay agua potable,Salud,Alta,2023-08-11,1,0,0\n" +
		"r-2,Luis,,M,santa marta,Faltan profesores!!,Educacion,Media,11/08/2023,si,si,rural\n"

	reports, skipped, err := ParseReports(strings.NewReader(input), "batch-1")
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)
	require.Len(t, reports, 2)

	first := reports[0]
	assert.Equal(t, "r-1", first.Id)
	require.NotNil(t, first.Age)
	assert.Equal(t, 34, *first.Age)
	assert.Equal(t, "Bogotá", first.City)
	assert.Equal(t, "No hay agua potable", first.Comment)
	assert.Equal(t, core.CategoryHealth, first.Category)
	assert.Equal(t, "Salud", first.OriginalCategory)
	assert.Equal(t, core.UrgencyHigh, first.Urgency)
	assert.Equal(t, time.Date(2023, 8, 11, 0, 0, 0, 0, time.UTC), first.ReportDate)
	require.NotNil(t, first.GovernmentAttention)
	assert.False(t, *first.GovernmentAttention)
	assert.Equal(t, core.ZoneUrban, first.Zone)
	assert.Equal(t, core.StatusPending, first.Status)
	assert.Equal(t, "batch-1", first.BatchId)
	assert.Equal(t, 0, first.BatchIndex)

	second := reports[1]
	assert.Nil(t, second.Age)
	assert.Equal(t, "Santa Marta", second.City)
	assert.Equal(t, "Faltan profesores!", second.Comment)
	assert.Equal(t, "Faltan profesores!!", second.OriginalComment)
	assert.Equal(t, core.CategoryEducation, second.Category)
	assert.Equal(t, time.Date(2023, 8, 11, 0, 0, 0, 0, time.UTC), second.ReportDate)
	assert.Equal(t, core.ZoneRural, second.Zone)
	assert.Equal(t, 1, second.BatchIndex)
}

func TestParseReports_EmptyStream(t *testing.T) {
	reports, skipped, err := ParseReports(strings.NewReader(""), "batch-1")
	require.NoError(t, err)
	assert.Empty(t, reports)
	assert.Equal(t, 0, skipped)
}

func TestParseReports_HeaderOnly(t *testing.T) {
	reports, skipped, err := ParseReports(strings.NewReader(csvHeader), "batch-1")
	require.NoError(t, err)
	assert.Empty(t, reports)
	assert.Equal(t, 0, skipped)
}

func TestParseReports_SkipsMalformedRow(t *testing.T) {
	input := csvHeader +
		"r-1,Ana,34,F,Cali,ok,Salud,Alta,2023-08-11,1,0,0\n" +
		"r-2,\"broken,Luis,40,M,Cali,bad row,Salud,Alta,2023-08-11,1,0,0\n" +
		"r-3,Rosa,28,F,Cali,fine,Salud,Alta,2023-08-11,1,0,0\n"

	reports, skipped, err := ParseReports(strings.NewReader(input), "batch-1")
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, reports, 2)
	assert.Equal(t, "r-1", reports[0].Id)
	assert.Equal(t, "r-3", reports[1].Id)
	// Batch indices stay contiguous across skipped rows
	assert.Equal(t, 1, reports[1].BatchIndex)
}

func TestParseReports_QuotedComma(t *testing.T) {
	input := csvHeader +
		"r-1,Ana,34,F,Cali,\"no water, no light\",Salud,Alta,2023-08-11,1,0,0\n"

	reports, _, err := ParseReports(strings.NewReader(input), "batch-1")
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "no water, no light", reports[0].Comment)
}

func TestParseReports_OutOfRangeAge(t *testing.T) {
	input := csvHeader +
		"1,Ana,200,F,Cali,some problem,Salud,Alta,2023-08-11,1,0,0\n"

	reports, _, err := ParseReports(strings.NewReader(input), "batch-1")
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Nil(t, reports[0].Age)
	assert.Equal(t, core.StatusPending, reports[0].Status)
}

func TestParseReports_MissingIDGetsContentHash(t *testing.T) {
	row := ",Ana,34,F,Cali,some problem,Salud,Alta,2023-08-11,1,0,0\n"

	first, _, err := ParseReports(strings.NewReader(csvHeader+row), "batch-1")
	require.NoError(t, err)
	second, _, err := ParseReports(strings.NewReader(csvHeader+row), "batch-2")
	require.NoError(t, err)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.NotEmpty(t, first[0].Id)
	// Same row content yields the same fallback ID across imports
	assert.Equal(t, first[0].Id, second[0].Id)
}

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"plain fields", "a,b,c", []string{"a", "b", "c"}},
		{"quoted comma", `a,"b,c",d`, []string{"a", "b,c", "d"}},
		{"escaped quote", `a,"say ""hi""",c`, []string{"a", `say "hi"`, "c"}},
		{"empty fields", "a,,c,", []string{"a", "", "c", ""}},
		{"surrounding spaces trimmed", " a , b ", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := splitLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fields)
		})
	}
}

func TestSplitLine_UnbalancedQuotes(t *testing.T) {
	_, err := splitLine(`a,"unterminated,b`)
	assert.ErrorIs(t, err, ErrUnbalancedQuotes)
}

func TestNormalizeAge(t *testing.T) {
	tests := []struct {
		value string
		want  *int
	}{
		{"34", intPtr(34)},
		{"0", intPtr(0)},
		{"120", intPtr(120)},
		{"121", nil},
		{"-1", nil},
		{"200", nil},
		{"abc", nil},
		{"", nil},
		{"  45 ", intPtr(45)},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got := normalizeAge(tt.value)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func intPtr(v int) *int { return &v }

func TestNormalizeCity(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"manizales", "Manizales"},
		{"santa marta", "Santa Marta"},
		{"BOGOTÁ", "Bogotá"},
		{"  cali  ", "Cali"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeCity(tt.value), "input %q", tt.value)
	}
}

func TestNormalizeComment(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"trims", "  hola  ", "hola"},
		{"strips symbol runs", "urgente ### ayuda", "urgente ayuda"},
		{"collapses whitespace", "no   hay    agua", "no hay agua"},
		{"collapses periods", "ayuda...", "ayuda."},
		{"collapses exclamations", "ayuda!!!", "ayuda!"},
		{"collapses question marks", "por que???", "por que?"},
		{"keeps single punctuation", "listo.", "listo."},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeComment(tt.value))
		})
	}
}

func TestNormalizeComment_Idempotent(t *testing.T) {
	samples := []string{
		"  urgente ### no hay   agua!!! ayuda...  ",
		"@@@ atención ???",
		"texto ya limpio.",
		"",
	}

	for _, sample := range samples {
		once := normalizeComment(sample)
		assert.Equal(t, once, normalizeComment(once), "input %q", sample)
	}
}

func TestNormalizeDate(t *testing.T) {
	expected := time.Date(2023, 8, 11, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		value string
		want  time.Time
	}{
		{"2023-08-11", expected},
		{"11/08/2023", expected},
		{"2023/08/11", expected},
		{"08/11/2023", time.Date(2023, 11, 8, 0, 0, 0, 0, time.UTC)}, // day-first wins
		{"12/25/2023", time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC)}, // month-first fallback
		{"not a date", time.Time{}},
		{"", time.Time{}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeDate(tt.value), "input %q", tt.value)
	}
}

func TestParseBool(t *testing.T) {
	trues := []string{"1", "true", "sí", "si", "yes", "y", "SI", "Yes"}
	falses := []string{"0", "false", "no", "n", "NO"}
	absents := []string{"", "  ", "maybe", "2"}

	for _, v := range trues {
		got := parseBool(v)
		require.NotNil(t, got, "input %q", v)
		assert.True(t, *got, "input %q", v)
	}
	for _, v := range falses {
		got := parseBool(v)
		require.NotNil(t, got, "input %q", v)
		assert.False(t, *got, "input %q", v)
	}
	for _, v := range absents {
		assert.Nil(t, parseBool(v), "input %q", v)
	}
}

func TestNormalizeZone(t *testing.T) {
	tests := []struct {
		value string
		want  core.Zone
	}{
		{"1", core.ZoneRural},
		{"0", core.ZoneUrban},
		{"true", core.ZoneRural},
		{"no", core.ZoneUrban},
		{"rural", core.ZoneRural},
		{"urbana", core.ZoneUrban},
		{"urban", core.ZoneUrban},
		{"", core.ZoneUnspecified},
		{"desconocida", core.ZoneUnspecified},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeZone(tt.value), "input %q", tt.value)
	}
}
