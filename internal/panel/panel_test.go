package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridwell/overlaykit/internal/control"
	"github.com/gridwell/overlaykit/internal/controls/colorchooser"
	"github.com/gridwell/overlaykit/internal/controls/list"
	"github.com/gridwell/overlaykit/internal/geometry"
	"github.com/gridwell/overlaykit/internal/render"
	overlayerrors "github.com/gridwell/overlaykit/pkg/errors"
)

func newRegistry(t *testing.T) *control.Registry {
	t.Helper()

	rec := render.NewRecorder(geometry.Rect{Width: 200, Height: 100})
	reg := control.NewRegistry(rec)
	require.NoError(t, reg.RegisterBehavior(list.New()))
	require.NoError(t, reg.RegisterBehavior(colorchooser.New()))

	require.NoError(t, reg.Create("list", "font", control.Attribs{Title: "Font"}))
	require.NoError(t, reg.Create("colorchooser", "text_color", control.Attribs{Title: "Color"}))
	return reg
}

func cellPanel() *Panel {
	return New("cell", map[string]Entry{
		NameKey: {Setting: "cell"},
		"font": {
			Setting:   "font",
			Type:      "list",
			ControlID: "font",
			InitialData: []list.Option{
				{Label: "Arial", Value: "arial"},
				{Label: "Courier New", Value: "courier"},
			},
		},
		"color": {
			Setting:   "textcolor",
			Type:      "colorchooser",
			ControlID: "text_color",
		},
	})
}

func TestLoadUnloadRoundTrip(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t)
	p := cellPanel()
	require.NoError(t, Initialize(reg, p))

	attrs := map[string]control.AttributeValue{
		"font":      control.Explicit("courier"),
		"textcolor": {IsDefault: true},
	}
	require.NoError(t, Load(reg, p, attrs))

	got, err := Unload(reg, p)
	require.NoError(t, err)
	assert.Equal(t, control.Explicit("courier"), got["font"])
	assert.True(t, got["textcolor"].IsDefault)
	assert.NotContains(t, got, NameKey, "metadata key never unloads")
}

func TestLoadMissingSettingDefaults(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t)
	p := cellPanel()
	require.NoError(t, Initialize(reg, p))

	require.NoError(t, reg.SetValue("text_color", control.Explicit("rgb(1,2,3)")))
	require.NoError(t, Load(reg, p, map[string]control.AttributeValue{
		"font": control.Explicit("arial"),
	}))

	got, err := reg.GetValue("text_color")
	require.NoError(t, err)
	assert.True(t, got.IsDefault, "absent setting loads as inherit")
}

func TestInitializePopulatesListOptions(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t)
	p := cellPanel()
	require.NoError(t, Initialize(reg, p))

	require.NoError(t, reg.SetValue("font", control.Explicit("arial")))
	inst, err := reg.Lookup("font")
	require.NoError(t, err)
	assert.Equal(t, "Arial", inst.Display)
}

func TestPanelsMayShareControls(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t)

	sheet := New("sheet", map[string]Entry{
		"default_color": {Setting: "defaultcolor", Type: "colorchooser", ControlID: "text_color"},
	})
	cell := New("cell", map[string]Entry{
		"color": {Setting: "textcolor", Type: "colorchooser", ControlID: "text_color"},
	})

	require.NoError(t, Load(reg, sheet, map[string]control.AttributeValue{
		"defaultcolor": control.Explicit("rgb(9,8,7)"),
	}))

	got, err := Unload(reg, cell)
	require.NoError(t, err)
	assert.Equal(t, control.Explicit("rgb(9,8,7)"), got["textcolor"],
		"both panels read the same underlying control")
}

func TestLoadUnknownControlWrapsPanelError(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t)
	p := New("broken", map[string]Entry{
		"ghost": {Setting: "ghost", Type: "list", ControlID: "missing"},
	})

	err := Load(reg, p, map[string]control.AttributeValue{})
	require.Error(t, err)

	var panelErr *overlayerrors.PanelError
	require.ErrorAs(t, err, &panelErr)
	assert.Equal(t, "broken", panelErr.Panel)

	var unknown *overlayerrors.UnknownControlError
	assert.ErrorAs(t, err, &unknown)
}

func TestSettingsSkipsReservedKey(t *testing.T) {
	t.Parallel()

	p := cellPanel()
	assert.ElementsMatch(t, []string{"font", "textcolor"}, p.Settings())
}
