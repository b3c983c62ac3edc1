package mobileservice

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUser_Construction(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"Facebook:600323", "alice", ""} {
		u := NewUser(id)
		require.Equal(t, id, u.UserID())
		require.Empty(t, u.AuthenticationToken(), "token must be absent after construction")
	}
}

func TestUser_TokenLastWriteWins(t *testing.T) {
	t.Parallel()

	u := NewUser("alice")
	u.SetAuthenticationToken("abc123")
	require.Equal(t, "abc123", u.AuthenticationToken())
	require.Equal(t, "alice", u.UserID())

	u.SetAuthenticationToken("def456")
	require.Equal(t, "def456", u.AuthenticationToken(), "replacement must overwrite, not append")

	u.SetAuthenticationToken("")
	require.Empty(t, u.AuthenticationToken(), "empty string clears the token")
	require.Equal(t, "alice", u.UserID(), "user id unaffected by token writes")
}

func TestUser_CloneIndependence(t *testing.T) {
	t.Parallel()

	a := NewUser("u1")
	a.SetAuthenticationToken("t1")

	b := a.Clone()
	require.Equal(t, "u1", b.UserID(), "clone carries the source id")
	require.Equal(t, "t1", b.AuthenticationToken(), "clone carries the token at copy time")

	b.SetAuthenticationToken("t2")
	require.Equal(t, "t1", a.AuthenticationToken(), "mutating the clone leaked into the source")

	a.SetAuthenticationToken("t3")
	require.Equal(t, "t2", b.AuthenticationToken(), "mutating the source leaked into the clone")
}

// The public contract offers no way to change the user id after
// construction: the field is unexported and no Set-style method for it
// exists on the type.
func TestUser_NoUserIDMutator(t *testing.T) {
	t.Parallel()

	typ := reflect.TypeOf(&User{})
	want := map[string]bool{
		"UserID":                 true,
		"AuthenticationToken":    true,
		"SetAuthenticationToken": true,
		"Clone":                  true,
	}
	for i := 0; i < typ.NumMethod(); i++ {
		name := typ.Method(i).Name
		require.True(t, want[name], "unexpected exported method %q on User", name)
	}
	require.Equal(t, len(want), typ.NumMethod())
}
