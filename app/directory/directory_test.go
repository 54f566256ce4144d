package directory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestDemo(t *testing.T) {
	d := Demo()
	assert.Len(t, d.Users(), 4)

	tbl := []struct {
		email, password string
		ok              bool
		name            string
		role            Role
	}{
		{"mario@example.com", "123456", true, "Mario Rossi", RoleCandidate},
		{"anna@example.com", "123456", true, "Anna Bianchi", RoleCandidate},
		{"hr@techcorp.com", "123456", true, "TechCorp", RoleCompany},
		{"HR@DataWorks.com ", "123456", true, "DataWorks", RoleCompany},
		{"mario@example.com", "wrong", false, "", ""},
		{"unknown@example.com", "123456", false, "", ""},
		{"", "", false, "", ""},
	}
	for _, tt := range tbl {
		t.Run(tt.email+"/"+tt.password, func(t *testing.T) {
			u, ok := d.Authenticate(tt.email, tt.password)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.name, u.Name)
			assert.Equal(t, tt.role, u.Role)
		})
	}
}

func TestNewStatic(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	d, err := NewStatic([]Entry{{User: User{Name: "Acme", Email: "hr@acme.com", Role: RoleCompany},
		PasswordHash: string(hash)}})
	require.NoError(t, err)
	u, ok := d.Authenticate("hr@acme.com", "secret")
	assert.True(t, ok)
	assert.Equal(t, User{Name: "Acme", Email: "hr@acme.com", Role: RoleCompany}, u)

	tbl := []struct {
		name    string
		entries []Entry
		err     string
	}{
		{"no email", []Entry{{User: User{Role: RoleCandidate}, Password: "x"}}, "email is required"},
		{"bad role", []Entry{{User: User{Email: "a@x.com", Role: "admin"}, Password: "x"}}, "invalid role"},
		{"no password", []Entry{{User: User{Email: "a@x.com", Role: RoleCandidate}}}, "password or password_hash"},
		{"duplicate", []Entry{
			{User: User{Email: "a@x.com", Role: RoleCandidate}, Password: "x"},
			{User: User{Email: "A@x.com", Role: RoleCompany}, Password: "y"},
		}, "duplicate email"},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStatic(tt.entries)
			assert.ErrorContains(t, err, tt.err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "users.yml")
	content := `users:
  - name: Mario Rossi
    email: mario@example.com
    role: candidate
    password: pass1
  - name: TechCorp
    email: hr@techcorp.com
    role: company
    password: pass2
`
	require.NoError(t, os.WriteFile(fname, []byte(content), 0o600))

	d, err := Load(fname)
	require.NoError(t, err)
	assert.Len(t, d.Users(), 2)

	u, ok := d.Authenticate("hr@techcorp.com", "pass2")
	require.True(t, ok)
	assert.Equal(t, "TechCorp", u.Name)
	assert.Equal(t, RoleCompany, u.Role)

	_, ok = d.Authenticate("mario@example.com", "pass2")
	assert.False(t, ok)

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.yml"))
		assert.ErrorContains(t, err, "failed to read users file")
	})

	t.Run("bad yaml", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.yml")
		require.NoError(t, os.WriteFile(bad, []byte("users: [\n"), 0o600))
		_, err := Load(bad)
		assert.ErrorContains(t, err, "failed to parse users file")
	})
}
