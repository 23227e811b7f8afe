package mapview

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
)

// pageTemplate is a self-contained Leaflet page. The route and the markers
// live in separate feature groups wired to a layer control, so either can be
// toggled independently. Above the clustering threshold the marker group is
// fed through Leaflet.markercluster.
var pageTemplate = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Route map</title>
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
{{if .Clustered}}<link rel="stylesheet" href="https://unpkg.com/leaflet.markercluster@1.5.3/dist/MarkerCluster.css">
<link rel="stylesheet" href="https://unpkg.com/leaflet.markercluster@1.5.3/dist/MarkerCluster.Default.css">
<script src="https://unpkg.com/leaflet.markercluster@1.5.3/dist/leaflet.markercluster.js"></script>
{{end}}<style>html, body, #map { height: 100%; margin: 0; }</style>
</head>
<body>
<div id="map"></div>
<script>
var map = L.map('map').setView([{{.CenterLat}}, {{.CenterLng}}], {{.Zoom}});
L.control.scale().addTo(map);
L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png', {
  attribution: '&copy; OpenStreetMap contributors'
}).addTo(map);

var routeLayer = L.featureGroup();
L.geoJSON({{.GeometryJS}}, { style: { color: 'red', weight: 4, opacity: 0.8 } }).addTo(routeLayer);
routeLayer.addTo(map);

var markerLayer = L.featureGroup();
{{if .Clustered}}var markerContainer = L.markerClusterGroup();
markerContainer.addTo(markerLayer);
{{else}}var markerContainer = markerLayer;
{{end}}var markers = {{.MarkersJS}};
markers.forEach(function (m) {
  L.marker([m.lat, m.lng], {
    icon: L.divIcon({
      iconSize: [30, 30],
      iconAnchor: [15, 15],
      html: '<div style="font-size:12pt;color:white;background:' + m.color +
        ';border-radius:50%;width:30px;height:30px;text-align:center;line-height:30px;">' +
        m.position + '</div>'
    })
  }).bindPopup('<b>' + m.position + '. ' + m.label + '</b><br>' + (m.detail || ''))
    .bindTooltip(m.position + '. ' + m.label)
    .addTo(markerContainer);
});
markerLayer.addTo(map);

L.control.layers(null, {
  'Route': routeLayer,
  'Places to visit': markerLayer
}, { collapsed: false }).addTo(map);
</script>
</body>
</html>
`))

// templateData carries pre-marshaled JSON so the template never re-encodes
// the geometry or the markers.
type templateData struct {
	CenterLat  float64
	CenterLng  float64
	Zoom       int
	Clustered  bool
	GeometryJS template.JS
	MarkersJS  template.JS
}

// RenderHTML renders the map document as a self-contained Leaflet page.
func RenderHTML(doc *MapDocument) (string, error) {
	markers, err := json.Marshal(doc.Markers)
	if err != nil {
		return "", fmt.Errorf("failed to encode markers: %w", err)
	}

	geometry := doc.Geometry
	if len(geometry) == 0 {
		geometry = json.RawMessage("null")
	}

	var buf strings.Builder
	err = pageTemplate.Execute(&buf, templateData{
		CenterLat:  doc.CenterLat,
		CenterLng:  doc.CenterLng,
		Zoom:       doc.Zoom,
		Clustered:  doc.Clustered,
		GeometryJS: template.JS(geometry),
		MarkersJS:  template.JS(markers),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render map page: %w", err)
	}
	return buf.String(), nil
}
