package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultDocumentIsFreshCopy(t *testing.T) {
	a := DefaultDocument()
	b := DefaultDocument()

	require.NotNil(t, a.Settings)
	require.Len(t, a.Sections, 8)
	require.Equal(t, "capa", a.Sections[0].ID)

	a.Settings.CompanyName = "changed"
	a.Sections[0].Items[0].Title = "changed"
	require.Equal(t, "CACU Agroindustrial", b.Settings.CompanyName)
	require.NotEqual(t, "changed", b.Sections[0].Items[0].Title)
}

func TestItemJSONKeepsOnlyActivePayload(t *testing.T) {
	raw := `{"id":"x","type":"STATS","title":"t",
		"stats":[{"label":"a","value":"1"}],
		"timelineEvents":[{"year":"2020","title":"stale"}]}`

	var item ContentItem
	require.NoError(t, json.Unmarshal([]byte(raw), &item))
	require.Equal(t, ItemStats, item.Type())

	stats, ok := item.Payload.(Stats)
	require.True(t, ok)
	require.Equal(t, []StatItem{{Label: "a", Value: "1"}}, stats.Items)

	out, err := json.Marshal(item)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	require.Equal(t, "STATS", m["type"])
	require.Contains(t, m, "stats")
	require.NotContains(t, m, "timelineEvents")
}

func TestUnknownTypeSurvivesRoundTrip(t *testing.T) {
	var item ContentItem
	require.NoError(t, json.Unmarshal([]byte(`{"id":"q","type":"QUIZ","title":"t"}`), &item))

	require.Equal(t, ItemType("QUIZ"), item.Type())
	require.False(t, item.Type().Valid())

	out, err := json.Marshal(item)
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"q","type":"QUIZ","title":"t"}`, string(out))
}

func TestParseDocumentWithoutSettings(t *testing.T) {
	d, err := ParseDocument([]byte(`{
		// legacy document
		"sections": [{"id": "a", "menuTitle": "A", "items": []},],
	}`))
	require.NoError(t, err)
	require.Nil(t, d.Settings)
	require.Len(t, d.Sections, 1)
	require.Empty(t, d.Sections[0].Items)
}

func TestCloneIsDeep(t *testing.T) {
	v2 := 2.5
	opacity := 40
	d := &AppData{
		Settings: &GlobalSettings{CompanyName: "c"},
		Sections: []ReportSection{{
			ID: "s",
			Items: []ContentItem{
				{ID: "chart", ImageOverlayOpacity: &opacity, Payload: Chart{Data: []ChartDataPoint{{Name: "n", Value2: &v2}}}},
				{ID: "mat", Payload: Materiality{Items: []MaterialityItem{{Category: "c", Topics: []string{"a"}}}}},
			},
		}},
	}

	c := d.Clone()
	*c.Sections[0].Items[0].ImageOverlayOpacity = 90
	*c.Sections[0].Items[0].Payload.(Chart).Data[0].Value2 = 9
	c.Sections[0].Items[1].Payload.(Materiality).Items[0].Topics[0] = "z"

	require.Equal(t, 40, opacity)
	require.Equal(t, 2.5, v2)
	require.Equal(t, "a", d.Sections[0].Items[1].Payload.(Materiality).Items[0].Topics[0])
}

func TestDocumentIndexes(t *testing.T) {
	d := DefaultDocument()

	require.Equal(t, 1, d.SectionIndex("sumario"))
	require.Equal(t, -1, d.SectionIndex("missing"))
	require.True(t, d.HasItemID("emissions-chart"))
	require.False(t, d.HasItemID("nope"))
	require.Equal(t, 12, d.ItemCount())
}
