package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskflowhq/taskflow-api/internal/domain"
)

func TestRegister(t *testing.T) {
	t.Parallel()

	validBody := func() map[string]any {
		return map[string]any{
			"userName": "Alice",
			"photoURL": "https://example.com/alice.png",
			"email":    "alice@x.com",
			"password": "hunter2",
			"shopName": []string{"alpha", "beta"},
		}
	}

	t.Run("creates the user and returns its ID", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		w := env.do(t, http.MethodPost, "/user", validBody())

		require.Equal(t, http.StatusCreated, w.Code)
		var resp struct {
			InsertedID uuid.UUID `json:"insertedId"`
		}
		decodeBody(t, w, &resp)
		assert.NotEqual(t, uuid.Nil, resp.InsertedID)

		users, err := env.userStore.List(context.Background())
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "alice@x.com", users[0].Email)
		assert.ElementsMatch(t, []string{"alpha", "beta"}, users[0].ShopNames)
	})

	t.Run("rejects any shop-name overlap with 400", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		first := env.do(t, http.MethodPost, "/user", validBody())
		require.Equal(t, http.StatusCreated, first.Code)

		second := validBody()
		second["userName"] = "Bob"
		second["email"] = "bob@x.com"
		second["shopName"] = []string{"gamma", "beta"}

		w := env.do(t, http.MethodPost, "/user", second)

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp struct {
			Error string `json:"error"`
		}
		decodeBody(t, w, &resp)
		assert.Equal(t, "one or more shop names already taken", resp.Error)
	})

	t.Run("allows disjoint shop names", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		first := env.do(t, http.MethodPost, "/user", validBody())
		require.Equal(t, http.StatusCreated, first.Code)

		second := validBody()
		second["userName"] = "Bob"
		second["email"] = "bob@x.com"
		second["shopName"] = []string{"gamma"}

		w := env.do(t, http.MethodPost, "/user", second)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			name  string
			unset string
		}{
			{name: "user name", unset: "userName"},
			{name: "email", unset: "email"},
			{name: "password", unset: "password"},
			{name: "shop names", unset: "shopName"},
		}
		for _, tc := range cases {
			tc := tc
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()
				env := newTestEnv(t)

				body := validBody()
				delete(body, tc.unset)

				w := env.do(t, http.MethodPost, "/user", body)

				assert.Equal(t, http.StatusBadRequest, w.Code)
			})
		}
	})

	t.Run("rejects a blank shop name entry", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		body := validBody()
		body["shopName"] = []string{"alpha", "  "}

		w := env.do(t, http.MethodPost, "/user", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListUsers(t *testing.T) {
	t.Parallel()

	t.Run("returns an empty array when no users exist", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		w := env.do(t, http.MethodGet, "/users", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("never serializes passwords", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		created := env.do(t, http.MethodPost, "/user", map[string]any{
			"userName": "Alice",
			"email":    "alice@x.com",
			"password": "hunter2",
			"shopName": []string{"alpha"},
		})
		require.Equal(t, http.StatusCreated, created.Code)

		w := env.do(t, http.MethodGet, "/users", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "hunter2")
		assert.NotContains(t, w.Body.String(), "password")

		var users []domain.User
		decodeBody(t, w, &users)
		require.Len(t, users, 1)
		assert.Equal(t, "Alice", users[0].UserName)
	})
}
