package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventbook/entity"
	"eventbook/navigation"
)

func TestNavigatorStartsAtLogin(t *testing.T) {
	nav := navigation.New()

	current := nav.Current()
	assert.Equal(t, navigation.ScreenLogin, current.Screen)
	assert.Equal(t, navigation.LoginParams{}, current.Params)
}

func TestNavigateReplacesParamsWholesale(t *testing.T) {
	nav := navigation.New()
	session := entity.Session{Token: "t1", UserID: 1, Name: "Uma"}

	nav.Replace(navigation.HomeParams{Session: session}, navigation.LoginParams{})

	current := nav.Current()
	require.Equal(t, navigation.ScreenHome, current.Screen)

	params, ok := current.Params.(navigation.HomeParams)
	require.True(t, ok)
	assert.Equal(t, session, params.Session)
}

func TestGoBackReturnsToSuppliedRoute(t *testing.T) {
	nav := navigation.New()
	session := entity.Session{Token: "t1"}
	event := entity.EventSummary{ID: 7, Title: "Sunburn Festival"}

	nav.Navigate(
		navigation.EventParams{Session: session, Event: event},
		navigation.HomeParams{Session: session},
	)

	back := nav.GoBack()
	require.Equal(t, navigation.ScreenHome, back.Screen)

	params, ok := back.Params.(navigation.HomeParams)
	require.True(t, ok)
	assert.Equal(t, session, params.Session)
}

func TestGoBackFallsBackToLogin(t *testing.T) {
	nav := navigation.New()
	nav.Replace(navigation.HomeParams{}, nil)

	back := nav.GoBack()
	assert.Equal(t, navigation.ScreenLogin, back.Screen)
}

func TestBackIsOneLevelDeep(t *testing.T) {
	nav := navigation.New()
	session := entity.Session{Token: "t1"}

	nav.Navigate(navigation.ProfileParams{Session: session}, navigation.HomeParams{Session: session})

	first := nav.GoBack()
	require.Equal(t, navigation.ScreenHome, first.Screen)

	// The intermediate screen never re-populated a back route, so a second
	// GoBack lands on the Login fallback, not on Profile.
	second := nav.GoBack()
	assert.Equal(t, navigation.ScreenLogin, second.Screen)
}

func TestOnChangeHookFiresPerTransition(t *testing.T) {
	nav := navigation.New()

	var seen []navigation.Screen
	nav.OnChange(func(r navigation.Route) {
		seen = append(seen, r.Screen)
	})

	nav.Navigate(navigation.RegisterParams{}, navigation.LoginParams{})
	nav.GoBack()

	assert.Equal(t, []navigation.Screen{navigation.ScreenRegister, navigation.ScreenLogin}, seen)
}
