package merge_test

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/docmerge-cli/internal/merge"
)

var today = time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		bindings []merge.FieldBinding
		want     string
	}{
		{
			name: "end to end",
			text: "Hello SeminartitelFeld, from VonFeld to BisFeld",
			bindings: []merge.FieldBinding{
				{Placeholder: "SeminartitelFeld", Value: "OpenXML SDK"},
				{Placeholder: "VonFeld", Value: "2024-01-01"},
				{Placeholder: "BisFeld", Value: "2024-01-02"},
			},
			want: "Hello OpenXML SDK, from 2024-01-01 to 2024-01-02",
		},
		{
			name:     "upper case",
			text:     "<w:t>SEMINARTITELFELD</w:t>",
			bindings: []merge.FieldBinding{{Placeholder: "SeminartitelFeld", Value: "X"}},
			want:     "<w:t>X</w:t>",
		},
		{
			name:     "lower case and repeated",
			text:     "seminartitelfeld / SeminarTitelFeld",
			bindings: []merge.FieldBinding{{Placeholder: "SeminartitelFeld", Value: "X"}},
			want:     "X / X",
		},
		{
			name:     "unmatched placeholder stays",
			text:     "am DatumFeld",
			bindings: []merge.FieldBinding{{Placeholder: "VonFeld", Value: "1"}},
			want:     "am DatumFeld",
		},
		{
			name:     "no bindings",
			text:     "DatumFeld",
			bindings: nil,
			want:     "DatumFeld",
		},
		{
			name:     "empty placeholder ignored",
			text:     "abc",
			bindings: []merge.FieldBinding{{Placeholder: "", Value: "X"}},
			want:     "abc",
		},
		{
			name:     "regexp metacharacters are literal",
			text:     "a.b a+b",
			bindings: []merge.FieldBinding{{Placeholder: "a.b", Value: "X"}},
			want:     "X a+b",
		},
		{
			name: "longer placeholder wins",
			text: "NameFeld VornameFeld",
			bindings: []merge.FieldBinding{
				{Placeholder: "NameFeld", Value: "N"},
				{Placeholder: "VornameFeld", Value: "V"},
			},
			want: "N V",
		},
		{
			name: "first duplicate wins",
			text: "VonFeld",
			bindings: []merge.FieldBinding{
				{Placeholder: "VonFeld", Value: "first"},
				{Placeholder: "vonfeld", Value: "second"},
			},
			want: "first",
		},
		{
			name: "values are not rescanned",
			text: "AnredeFeld",
			bindings: []merge.FieldBinding{
				{Placeholder: "AnredeFeld", Value: "VornameFeld"},
				{Placeholder: "VornameFeld", Value: "Laura"},
			},
			want: "VornameFeld",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, merge.Substitute(tt.text, tt.bindings))
		})
	}
}

func certificateText() string {
	return "SeminartitelFeld|Punkt1Feld|Punkt2Feld|Punkt3Feld|Punkt4Feld|Punkt5Feld|" +
		"DatumFeld|AnredeFeld|VornameFeld|NachnameFeld|VonFeld|BisFeld|seminartitelfeld"
}

func TestBindings_OrderAndValues(t *testing.T) {
	tr := merge.SampleTraining(today)
	got, err := merge.Bindings(tr, tr.Attendees[2], today, "")
	require.NoError(t, err)

	names := make([]string, len(got))
	for i, b := range got {
		names[i] = b.Placeholder
	}
	assert.Equal(t, []string{
		"SeminartitelFeld", "Punkt1Feld", "Punkt2Feld", "Punkt3Feld", "Punkt4Feld", "Punkt5Feld",
		"DatumFeld", "AnredeFeld", "VornameFeld", "NachnameFeld", "VonFeld", "BisFeld",
	}, names)

	want := "OpenXML SDK|Überblick Open XML SDK|Lesen von Dokumenteigenschaften|Erstellen von neuen Dokumenten|" +
		"Lesen von bestehenden Dokumenten|Verändern bestehender Dokumente|03.01.2024|Frau|Laura|Buitoni|" +
		"01.01.2024|02.01.2024|OpenXML SDK"
	assert.Equal(t, want, merge.Substitute(certificateText(), got))
}

func TestBindings_DateLayout(t *testing.T) {
	got, err := merge.TrainingBindings(merge.SampleTraining(today), today, "2006-01-02")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01 2024-01-02 2024-01-03", merge.Substitute("VonFeld BisFeld DatumFeld", got))
}

func TestBindings_OutOfRange(t *testing.T) {
	tr := merge.SampleTraining(today)
	tr.Contents = tr.Contents[:4]

	_, err := merge.Bindings(tr, tr.Attendees[0], today, "")
	require.ErrorIs(t, err, merge.ErrOutOfRange)

	_, err = merge.TrainingBindings(merge.Training{}, today, "")
	require.ErrorIs(t, err, merge.ErrOutOfRange)
}

func TestSampleData_OrderIndependent(t *testing.T) {
	tr := merge.SampleTraining(today)
	for _, a := range tr.Attendees {
		bindings, err := merge.Bindings(tr, a, today, "")
		require.NoError(t, err)
		require.Empty(t, merge.Conflicts(bindings))

		text := strings.Repeat(certificateText()+"\n", 3)
		want := merge.Substitute(text, bindings)
		// chained single-binding application must agree with the combined pass
		chained := text
		for _, b := range bindings {
			chained = merge.Substitute(chained, []merge.FieldBinding{b})
		}
		require.Equal(t, want, chained)

		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 50; i++ {
			perm := make([]merge.FieldBinding, len(bindings))
			for j, k := range rng.Perm(len(bindings)) {
				perm[j] = bindings[k]
			}
			require.Equal(t, want, merge.Substitute(text, perm), "permutation %d", i)
		}
	}
}

func TestConflicts(t *testing.T) {
	c := merge.Conflicts([]merge.FieldBinding{
		{Placeholder: "NameFeld", Value: "x"},
		{Placeholder: "VornameFeld", Value: "namefeld"},
	})
	assert.Len(t, c, 2)
}

func TestEscapeXML(t *testing.T) {
	in := []merge.FieldBinding{{Placeholder: "SeminartitelFeld", Value: "Go & <XML>"}}
	out := merge.EscapeXML(in)
	assert.Equal(t, "Go &amp; &lt;XML&gt;", out[0].Value)
	assert.Equal(t, "Go & <XML>", in[0].Value, "input must not be mutated")
}
