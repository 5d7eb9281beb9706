package collectors

import (
	"errors"
	"testing"

	"github.com/cloud-exit/datawiz/internal/dataloaders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeState struct {
	bucket  string
	plugins []dataloaders.TelegrafPlugin
	bundles []dataloaders.BundleName
}

func (f *fakeState) Bucket() string                                { return f.bucket }
func (f *fakeState) TelegrafPlugins() []dataloaders.TelegrafPlugin { return f.plugins }
func (f *fakeState) PluginBundles() []dataloaders.BundleName       { return f.bundles }

type call struct {
	op   string
	args []string
}

type recordingDispatcher struct {
	calls []call
}

func (r *recordingDispatcher) SetBucketInfo(orgID, name, id string) {
	r.calls = append(r.calls, call{"setBucketInfo", []string{orgID, name, id}})
}

func (r *recordingDispatcher) AddPluginBundleWithPlugins(b dataloaders.BundleName) {
	r.calls = append(r.calls, call{"add", []string{string(b)}})
}

func (r *recordingDispatcher) RemovePluginBundleWithPlugins(b dataloaders.BundleName) {
	r.calls = append(r.calls, call{"remove", []string{string(b)}})
}

func (r *recordingDispatcher) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

var (
	bucketA = dataloaders.Bucket{OrgID: "org1", ID: "b1", Name: "bucketA"}
	cpu     = dataloaders.NewTelegrafPlugin("cpu")
)

func newStep(state *fakeState, buckets []dataloaders.Bucket) (*Step, *recordingDispatcher) {
	d := &recordingDispatcher{}
	return NewStep(Props{OrgID: "org1", Buckets: buckets, State: state, Dispatch: d}), d
}

func TestNextButtonStatus(t *testing.T) {
	plugins := []dataloaders.TelegrafPlugin{cpu}
	buckets := []dataloaders.Bucket{bucketA}

	tests := []struct {
		name    string
		buckets []dataloaders.Bucket
		plugins []dataloaders.TelegrafPlugin
		want    ComponentStatus
	}{
		{"nil buckets, no plugins", nil, nil, StatusDisabled},
		{"nil buckets, plugins", nil, plugins, StatusDisabled},
		{"empty buckets, plugins", []dataloaders.Bucket{}, plugins, StatusDisabled},
		{"buckets, nil plugins", buckets, nil, StatusDisabled},
		{"buckets, empty plugins", buckets, []dataloaders.TelegrafPlugin{}, StatusDisabled},
		{"buckets and plugins", buckets, plugins, StatusDefault},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NextButtonStatus(tc.buckets, tc.plugins))
		})
	}
}

func TestNextButtonStatus_RecomputedOnEveryRender(t *testing.T) {
	state := &fakeState{bucket: "bucketA"}
	step, _ := newStep(state, []dataloaders.Bucket{bucketA})

	assert.Equal(t, StatusDisabled, step.Render().Buttons.NextStatus)

	state.plugins = []dataloaders.TelegrafPlugin{cpu}
	assert.Equal(t, StatusDefault, step.Render().Buttons.NextStatus)

	step.SetProps(Props{State: state, Dispatch: &recordingDispatcher{}})
	assert.Equal(t, StatusDisabled, step.Render().Buttons.NextStatus)
}

func TestHandleSelectBucket(t *testing.T) {
	step, d := newStep(&fakeState{}, []dataloaders.Bucket{bucketA})

	step.HandleSelectBucket(bucketA)

	require.Len(t, d.calls, 1)
	assert.Equal(t, call{"setBucketInfo", []string{"org1", "bucketA", "b1"}}, d.calls[0])
}

func TestHandleTogglePluginBundle_SelectedRemoves(t *testing.T) {
	step, d := newStep(&fakeState{}, nil)

	step.HandleTogglePluginBundle(dataloaders.BundleSystem, true)

	assert.Equal(t, 1, d.count("remove"))
	assert.Equal(t, 0, d.count("add"))
	assert.Equal(t, []string{"system"}, d.calls[0].args)
}

func TestHandleTogglePluginBundle_UnselectedAdds(t *testing.T) {
	step, d := newStep(&fakeState{}, nil)

	step.HandleTogglePluginBundle(dataloaders.BundleDocker, false)

	assert.Equal(t, 1, d.count("add"))
	assert.Equal(t, 0, d.count("remove"))
	assert.Equal(t, []string{"docker"}, d.calls[0].args)
}

func TestRender_SelectorHiddenWithoutBucket(t *testing.T) {
	step, _ := newStep(&fakeState{}, []dataloaders.Bucket{bucketA})

	v := step.Render()

	assert.Nil(t, v.Selector)
	assert.Equal(t, Title, v.Title)
	assert.Equal(t, Subtitle, v.Subtitle)
	assert.True(t, v.Buttons.AutoFocusNext)
	assert.Equal(t, StatusDisabled, v.Buttons.NextStatus)
}

func TestRender_SelectorShownWithBucket(t *testing.T) {
	state := &fakeState{
		bucket:  "bucketA",
		plugins: []dataloaders.TelegrafPlugin{cpu},
		bundles: []dataloaders.BundleName{dataloaders.BundleSystem},
	}
	step, d := newStep(state, []dataloaders.Bucket{bucketA})

	v := step.Render()

	require.NotNil(t, v.Selector)
	assert.Equal(t, "bucketA", v.Selector.SelectedBucketName)
	assert.Equal(t, []dataloaders.Bucket{bucketA}, v.Selector.Buckets)
	assert.Equal(t, state.bundles, v.Selector.PluginBundles)
	assert.Equal(t, state.plugins, v.Selector.TelegrafPlugins)

	v.Selector.OnTogglePluginBundle(dataloaders.BundleSystem, true)
	v.Selector.OnSelectBucket(bucketA)
	assert.Equal(t, []string{"remove", "setBucketInfo"}, []string{d.calls[0].op, d.calls[1].op})
}

func TestSubmit(t *testing.T) {
	state := &fakeState{bucket: "bucketA"}
	advanced := 0
	step := NewStep(Props{
		Buckets:                     []dataloaders.Bucket{bucketA},
		OnIncrementCurrentStepIndex: func() { advanced++ },
		State:                       state,
		Dispatch:                    &recordingDispatcher{},
	})

	assert.False(t, step.Submit())
	assert.Equal(t, 0, advanced)

	state.plugins = []dataloaders.TelegrafPlugin{cpu}
	assert.True(t, step.Submit())
	assert.Equal(t, 1, advanced)
}

func TestErrorHandling_RecoversPanic(t *testing.T) {
	render := ErrorHandling(func() string {
		panic("boom")
	}, func(err error) string {
		return "fallback: " + err.Error()
	})

	assert.Equal(t, "fallback: render panic: boom", render())
}

func TestErrorHandling_PassesThrough(t *testing.T) {
	render := ErrorHandling(func() View {
		return View{Title: Title}
	}, func(error) View {
		return View{Title: "error"}
	})

	assert.Equal(t, Title, render().Title)
}

func TestErrorHandling_ExposesRenderError(t *testing.T) {
	var got error
	render := ErrorHandling(func() int {
		var m map[string]int
		m["x"] = 1
		return 0
	}, func(err error) int {
		got = err
		return -1
	})

	assert.Equal(t, -1, render())
	var re *RenderError
	require.True(t, errors.As(got, &re))
	assert.NotEmpty(t, re.Stack)
}
