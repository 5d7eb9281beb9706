package store

import (
	"sync"
	"testing"

	"github.com/cloud-exit/datawiz/internal/collectors"
	"github.com/cloud-exit/datawiz/internal/dataloaders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce_SetBucketInfo(t *testing.T) {
	s := Reduce(State{}, SetBucketInfo{OrgID: "org1", Name: "bucketA", ID: "b1"})

	assert.Equal(t, Steps{OrgID: "org1", Bucket: "bucketA", BucketID: "b1"}, s.DataLoading.Steps)
}

func TestReduce_AddBundle(t *testing.T) {
	s := Reduce(State{}, AddPluginBundle{Bundle: dataloaders.BundleSystem})

	dl := s.DataLoading.DataLoaders
	assert.Equal(t, []dataloaders.BundleName{dataloaders.BundleSystem}, dl.PluginBundles)
	assert.Equal(t, dataloaders.PluginsForBundle(dataloaders.BundleSystem), dataloaders.PluginNames(dl.TelegrafPlugins))
}

func TestReduce_AddBundleTwiceIsIdempotent(t *testing.T) {
	s := Reduce(State{}, AddPluginBundle{Bundle: dataloaders.BundleDocker})
	s = Reduce(s, AddPluginBundle{Bundle: dataloaders.BundleDocker})

	assert.Len(t, s.DataLoading.DataLoaders.PluginBundles, 1)
	assert.Len(t, s.DataLoading.DataLoaders.TelegrafPlugins, 1)
	assert.Equal(t, dataloaders.Unconfigured, s.DataLoading.DataLoaders.TelegrafPlugins[0].Configured)
}

func TestReduce_AddUnknownBundleIgnored(t *testing.T) {
	s := Reduce(State{}, AddPluginBundle{Bundle: "mysql"})

	assert.Empty(t, s.DataLoading.DataLoaders.PluginBundles)
	assert.Empty(t, s.DataLoading.DataLoaders.TelegrafPlugins)
}

func TestReduce_RemoveBundle(t *testing.T) {
	s := Reduce(State{}, AddPluginBundle{Bundle: dataloaders.BundleSystem})
	s = Reduce(s, AddPluginBundle{Bundle: dataloaders.BundleRedis})
	s = Reduce(s, RemovePluginBundle{Bundle: dataloaders.BundleSystem})

	dl := s.DataLoading.DataLoaders
	assert.Equal(t, []dataloaders.BundleName{dataloaders.BundleRedis}, dl.PluginBundles)
	assert.Equal(t, []string{"redis"}, dataloaders.PluginNames(dl.TelegrafPlugins))
}

func TestReduce_RemoveKeepsPluginsSharedWithOtherBundles(t *testing.T) {
	s := State{DataLoading: DataLoading{DataLoaders: DataLoaders{
		PluginBundles: []dataloaders.BundleName{dataloaders.BundleDocker, dataloaders.BundleSystem},
		TelegrafPlugins: []dataloaders.TelegrafPlugin{
			dataloaders.NewTelegrafPlugin("docker"),
			dataloaders.NewTelegrafPlugin("cpu"),
			dataloaders.NewTelegrafPlugin("custom"),
		},
	}}}

	s = Reduce(s, RemovePluginBundle{Bundle: dataloaders.BundleDocker})

	assert.Equal(t, []string{"cpu", "custom"}, dataloaders.PluginNames(s.DataLoading.DataLoaders.TelegrafPlugins))
}

func TestReduce_StepIndex(t *testing.T) {
	s := Reduce(State{}, DecrementStep{})
	assert.Equal(t, 0, s.DataLoading.Steps.CurrentStepIndex)

	s = Reduce(s, IncrementStep{})
	s = Reduce(s, IncrementStep{})
	assert.Equal(t, 2, s.DataLoading.Steps.CurrentStepIndex)

	s = Reduce(s, DecrementStep{})
	assert.Equal(t, 1, s.DataLoading.Steps.CurrentStepIndex)

	s = Reduce(s, SetStep{Index: -3})
	assert.Equal(t, 1, s.DataLoading.Steps.CurrentStepIndex)
	s = Reduce(s, SetStep{Index: 0})
	assert.Equal(t, 0, s.DataLoading.Steps.CurrentStepIndex)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	in := Reduce(State{}, AddPluginBundle{Bundle: dataloaders.BundleSystem})
	before := in.Clone()

	_ = Reduce(in, RemovePluginBundle{Bundle: dataloaders.BundleSystem})

	assert.Equal(t, before, in)
}

func TestStore_DispatchNotifiesInOrder(t *testing.T) {
	s := New(State{})
	var seen []string
	s.Subscribe(func(st State) { seen = append(seen, "a:"+st.DataLoading.Steps.Bucket) })
	unsub := s.Subscribe(func(st State) { seen = append(seen, "b:"+st.DataLoading.Steps.Bucket) })

	s.SetBucketInfo("org1", "bucketA", "b1")
	unsub()
	s.SetBucketInfo("org1", "bucketB", "b2")

	assert.Equal(t, []string{"a:bucketA", "b:bucketA", "a:bucketB"}, seen)
}

func TestStore_ImplementsCollectorsContracts(t *testing.T) {
	s := New(State{})
	step := collectors.NewStep(collectors.Props{
		OrgID:    "org1",
		Buckets:  []dataloaders.Bucket{{OrgID: "org1", ID: "b1", Name: "bucketA"}},
		State:    s,
		Dispatch: s,
	})

	assert.Nil(t, step.Render().Selector)

	step.HandleSelectBucket(dataloaders.Bucket{OrgID: "org1", ID: "b1", Name: "bucketA"})
	step.HandleTogglePluginBundle(dataloaders.BundleDocker, false)

	v := step.Render()
	require.NotNil(t, v.Selector)
	assert.Equal(t, "bucketA", v.Selector.SelectedBucketName)
	assert.Equal(t, collectors.StatusDefault, v.Buttons.NextStatus)

	step.HandleTogglePluginBundle(dataloaders.BundleDocker, true)
	assert.Empty(t, s.TelegrafPlugins())
	assert.Equal(t, collectors.StatusDisabled, step.NextButtonStatus())
}

func TestStore_StateIsACopy(t *testing.T) {
	s := New(State{})
	s.AddPluginBundleWithPlugins(dataloaders.BundleSystem)

	st := s.State()
	st.DataLoading.DataLoaders.TelegrafPlugins[0].Name = "mutated"

	assert.Equal(t, "cpu", s.TelegrafPlugins()[0].Name)
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	s := New(State{})
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.IncrementCurrentStepIndex()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, s.State().DataLoading.Steps.CurrentStepIndex)
}
