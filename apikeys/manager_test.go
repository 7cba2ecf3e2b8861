package apikeys

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/status-im/mapzen-core/resources"
	"github.com/status-im/mapzen-core/resources/mock"
)

const testPackage = "com.example.app"

// recordingListener collects every key it is notified with
type recordingListener struct {
	mu   sync.Mutex
	keys []string
}

func (r *recordingListener) OnAPIKeyChanged(newKey string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys = append(r.keys, newKey)
}

func (r *recordingListener) received() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.keys...)
}

func contextWithKey(key string) resources.AppContext {
	return resources.NewContext(testPackage,
		resources.NewStatic().Set(testPackage, ResourceType, ResourceName, key))
}

func resetInstance(t *testing.T) {
	t.Helper()
	instance.Store(nil)
	t.Cleanup(func() { instance.Store(nil) })
}

func TestNew_ResolvesResource(t *testing.T) {
	m := New(contextWithKey("mapzen-ABC123"))

	assert.Equal(t, "mapzen-ABC123", m.APIKey())
	key, ok := m.LookupAPIKey()
	assert.True(t, ok)
	assert.Equal(t, "mapzen-ABC123", key)
}

func TestNew_AbsentResource(t *testing.T) {
	t.Run("resource not declared", func(t *testing.T) {
		m := New(resources.NewContext(testPackage, resources.NewStatic()))

		assert.Equal(t, "", m.APIKey())
		_, ok := m.LookupAPIKey()
		assert.False(t, ok)
	})

	t.Run("no resources", func(t *testing.T) {
		m := New(resources.NewContext(testPackage, nil))
		_, ok := m.LookupAPIKey()
		assert.False(t, ok)
	})

	t.Run("nil context", func(t *testing.T) {
		m := New(nil)
		assert.Equal(t, "", m.APIKey())
	})

	t.Run("declared for another package", func(t *testing.T) {
		res := resources.NewStatic().Set("com.other.app", ResourceType, ResourceName, "other-key")
		m := New(resources.NewContext(testPackage, res))
		assert.Equal(t, "", m.APIKey())
	})
}

func TestNew_LooksUpNameTypeAndPackage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	res := mock.NewMockResources(ctrl)
	res.EXPECT().Lookup("mapzen_api_key", "string", testPackage).Return("mapzen-mock", true)

	m := New(resources.NewContext(testPackage, res))
	assert.Equal(t, "mapzen-mock", m.APIKey())
}

func TestNew_WithResource(t *testing.T) {
	res := resources.NewStatic().Set(testPackage, "raw", "custom_key", "custom")
	m := New(resources.NewContext(testPackage, res), WithResource("custom_key", "raw"))
	assert.Equal(t, "custom", m.APIKey())
}

// activityContext hands out a separate application context, the way a
// short-lived host context would
type activityContext struct {
	app resources.AppContext
}

func (a *activityContext) Resources() resources.Resources           { return nil }
func (a *activityContext) PackageName() string                      { return "ignored" }
func (a *activityContext) ApplicationContext() resources.AppContext { return a.app }

func TestNew_UsesApplicationContext(t *testing.T) {
	m := New(&activityContext{app: contextWithKey("mapzen-app")})
	assert.Equal(t, "mapzen-app", m.APIKey())
}

func TestNew_PlaceholderIsReturnedAsIs(t *testing.T) {
	m := New(contextWithKey(DefaultAPIKey))

	assert.Equal(t, DefaultAPIKey, m.APIKey())
	assert.False(t, IsValid(m.APIKey()))
}

func TestInstance_Singleton(t *testing.T) {
	resetInstance(t)

	first := Instance(contextWithKey("K1"))
	second := Instance(contextWithKey("K2"))
	third := Instance(nil)

	assert.Same(t, first, second)
	assert.Same(t, first, third)
	assert.Equal(t, "K1", third.APIKey())
}

func TestInstance_ConcurrentFirstCallsBuildOne(t *testing.T) {
	resetInstance(t)

	const callers = 32
	results := make([]*Manager, callers)

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			results[i] = Instance(contextWithKey(fmt.Sprintf("K%d", i)))
		}(i)
	}
	close(start)
	wg.Wait()

	for _, m := range results {
		assert.Same(t, results[0], m)
	}
}

func TestSetAPIKey_Overrides(t *testing.T) {
	m := New(contextWithKey("K1"))

	m.SetAPIKey("K2")
	assert.Equal(t, "K2", m.APIKey())

	m.SetAPIKey("")
	key, ok := m.LookupAPIKey()
	assert.True(t, ok)
	assert.Equal(t, "", key)
}

func TestListeners_NotifiedOnce(t *testing.T) {
	m := New(nil)
	l := &recordingListener{}

	m.AddChangeListener(l)
	m.SetAPIKey("K3")

	assert.Equal(t, []string{"K3"}, l.received())
}

func TestListeners_DuplicateRegistration(t *testing.T) {
	m := New(nil)
	l := &recordingListener{}

	m.AddChangeListener(l)
	m.AddChangeListener(l)
	m.SetAPIKey("K4")

	assert.Equal(t, []string{"K4", "K4"}, l.received())
	assert.Equal(t, 2, m.ListenerCount())

	// Removing once leaves the second registration
	m.RemoveChangeListener(l)
	m.SetAPIKey("K5")
	assert.Equal(t, []string{"K4", "K4", "K5"}, l.received())
}

func TestListeners_Removal(t *testing.T) {
	m := New(nil)
	l := &recordingListener{}

	m.AddChangeListener(l)
	m.RemoveChangeListener(l)
	m.SetAPIKey("K5")

	assert.Empty(t, l.received())
	assert.Equal(t, 0, m.ListenerCount())
}

func TestListeners_RemoveUnregistered(t *testing.T) {
	m := New(nil)
	registered := &recordingListener{}
	m.AddChangeListener(registered)

	assert.NotPanics(t, func() {
		m.RemoveChangeListener(&recordingListener{})
		m.RemoveChangeListener(nil)
	})
	assert.Equal(t, 1, m.ListenerCount())
}

// sliceListener has a value receiver and a slice field, so its dynamic
// type is not comparable
type sliceListener struct {
	tags []string
	rec  *recordingListener
}

func (s sliceListener) OnAPIKeyChanged(newKey string) {
	s.rec.OnAPIKeyChanged(newKey)
}

// wrappedListener is a comparable type that can hold a non-comparable value
type wrappedListener struct {
	inner ChangeListener
}

func (w wrappedListener) OnAPIKeyChanged(newKey string) {
	w.inner.OnAPIKeyChanged(newKey)
}

func TestListeners_RemoveNonComparable(t *testing.T) {
	t.Run("slice field", func(t *testing.T) {
		m := New(nil)
		rec := &recordingListener{}
		m.AddChangeListener(sliceListener{tags: []string{"a"}, rec: rec})

		assert.NotPanics(t, func() {
			m.RemoveChangeListener(sliceListener{tags: []string{"a"}, rec: rec})
		})
		assert.Equal(t, 1, m.ListenerCount())

		m.SetAPIKey("K6")
		assert.Equal(t, []string{"K6"}, rec.received())
	})

	t.Run("interface field holding slice", func(t *testing.T) {
		m := New(nil)
		rec := &recordingListener{}
		m.AddChangeListener(wrappedListener{inner: sliceListener{rec: rec}})

		assert.NotPanics(t, func() {
			m.RemoveChangeListener(wrappedListener{inner: sliceListener{rec: rec}})
		})
		assert.Equal(t, 1, m.ListenerCount())
	})

	t.Run("comparable listeners still removable", func(t *testing.T) {
		m := New(nil)
		rec := &recordingListener{}
		m.AddChangeListener(sliceListener{rec: rec})
		m.AddChangeListener(rec)

		m.RemoveChangeListener(rec)
		assert.Equal(t, 1, m.ListenerCount())
	})
}

func TestAddChangeListener_WarnsWhenNotRemovable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := mock.NewMockLogger(ctrl)
	logger.EXPECT().
		Warn("Change listener type is not comparable and cannot be removed", "type", "apikeys.sliceListener").
		Times(1)

	m := New(nil, WithLogger(logger))
	m.AddChangeListener(sliceListener{rec: &recordingListener{}})
	m.AddChangeListener(&recordingListener{})

	assert.Equal(t, 2, m.ListenerCount())
}

type orderListener struct {
	id    int
	order *[]int
}

func (o *orderListener) OnAPIKeyChanged(string) {
	*o.order = append(*o.order, o.id)
}

func TestListeners_RegistrationOrder(t *testing.T) {
	m := New(nil)
	var order []int
	for i := 1; i <= 3; i++ {
		m.AddChangeListener(&orderListener{id: i, order: &order})
	}

	m.SetAPIKey("K6")
	assert.Equal(t, []int{1, 2, 3}, order)
}

// addingListener registers another listener while being notified
type addingListener struct {
	m     *Manager
	added *recordingListener
	calls int
}

func (a *addingListener) OnAPIKeyChanged(string) {
	a.calls++
	a.m.AddChangeListener(a.added)
}

func TestListeners_AddedDuringNotificationWaitsForNextRound(t *testing.T) {
	m := New(nil)
	late := &recordingListener{}
	adder := &addingListener{m: m, added: late}
	m.AddChangeListener(adder)

	m.SetAPIKey("K7")
	assert.Empty(t, late.received())

	m.RemoveChangeListener(adder)
	m.SetAPIKey("K8")
	assert.Equal(t, []string{"K8"}, late.received())
}

func TestListeners_ValueSeenIsStored(t *testing.T) {
	m := New(nil)
	var seen string
	cancel := m.OnChange(func(string) {
		seen = m.APIKey()
	})
	defer cancel()

	m.SetAPIKey("K9")
	assert.Equal(t, "K9", seen)
}

func TestOnChange_Cancel(t *testing.T) {
	m := New(nil)
	var got []string
	cancel := m.OnChange(func(k string) { got = append(got, k) })

	m.SetAPIKey("A")
	cancel()
	cancel()
	m.SetAPIKey("B")

	assert.Equal(t, []string{"A"}, got)
	assert.Equal(t, 0, m.ListenerCount())
}

func TestManager_ConcurrentAccess(t *testing.T) {
	m := New(contextWithKey("seed"))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(3)
		go func(i int) {
			defer wg.Done()
			m.SetAPIKey(fmt.Sprintf("key-%d", i))
		}(i)
		go func() {
			defer wg.Done()
			l := &recordingListener{}
			m.AddChangeListener(l)
			m.RemoveChangeListener(l)
		}()
		go func() {
			defer wg.Done()
			_ = m.APIKey()
		}()
	}
	wg.Wait()

	require.Equal(t, 0, m.ListenerCount())
	assert.Contains(t, m.APIKey(), "key-")
}

func TestSDKVersion_Constant(t *testing.T) {
	v := SDKVersion()
	assert.NotEmpty(t, v)
	for i := 0; i < 3; i++ {
		assert.Equal(t, v, SDKVersion())
	}
}
