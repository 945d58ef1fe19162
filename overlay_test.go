package spacenet

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const roadsJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"name": "Rue de Rivoli"},
      "geometry": {
        "type": "LineString",
        "coordinates": [[2.33, 48.86], [2.34, 48.861], [2.35, 48.862]]
      }
    },
    {
      "type": "Feature",
      "properties": {"name": "Boulevard Périphérique"},
      "geometry": {
        "type": "MultiLineString",
        "coordinates": [[[2.3, 48.8], [2.31, 48.81]], [[2.32, 48.82], [2.33, 48.83]]]
      }
    }
  ]
}`

func writeTempOverlay(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roads.geojson")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRoadOverlay(t *testing.T) {
	g := NewMosaicToolbox()
	ov, err := g.LoadRoadOverlay(writeTempOverlay(t, roadsJSON))
	if err != nil {
		t.Fatal(err)
	}
	if len(ov.Lines) != 1 {
		t.Fatalf("want exactly the flat polyline, got %d", len(ov.Lines))
	}
	if ov.Skipped != 1 {
		t.Fatalf("want 1 skipped multi-part feature, got %d", ov.Skipped)
	}
	line := ov.Lines[0]
	if line.Name != "Rue de Rivoli" {
		t.Fatalf("unexpected name %q", line.Name)
	}
	if len(line.Line) != 3 {
		t.Fatalf("want 3 points, got %d", len(line.Line))
	}
	if line.Line[0][0] != 2.33 || line.Line[0][1] != 48.86 {
		t.Fatalf("unexpected first point %v", line.Line[0])
	}
}

func TestLoadRoadOverlayMalformed(t *testing.T) {
	g := NewMosaicToolbox()
	if _, err := g.LoadRoadOverlay(writeTempOverlay(t, `{"type": "Feature`)); !errors.Is(err, ErrInvalidGeoJSON) {
		t.Fatalf("want ErrInvalidGeoJSON, got %v", err)
	}
}

func TestLoadRoadOverlayMissingFile(t *testing.T) {
	g := NewMosaicToolbox()
	if _, err := g.LoadRoadOverlay(filepath.Join(t.TempDir(), "nope.geojson")); err == nil {
		t.Fatal("want error for missing file")
	}
}

func TestLoadRoadOverlayEmptyCollection(t *testing.T) {
	g := NewMosaicToolbox()
	ov, err := g.LoadRoadOverlay(writeTempOverlay(t, `{"type": "FeatureCollection", "features": []}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(ov.Lines) != 0 || ov.Skipped != 0 {
		t.Fatalf("unexpected overlay %+v", ov)
	}
}
