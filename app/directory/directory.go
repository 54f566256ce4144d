// Package directory authenticates board users. Directory is an interface so the static
// list can be replaced by a real credential store without touching the client.
package directory

import (
	"fmt"
	"os"
	"strings"

	log "github.com/go-pkgz/lgr"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// Role of a user, decides which view the client shows
type Role string

// enum of all roles
const (
	RoleCandidate Role = "candidate"
	RoleCompany   Role = "company"
)

// User is an authenticated board user. For companies Name matches Job.Company.
type User struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Role  Role   `yaml:"role"`
}

// Directory authenticates users by email and password
type Directory interface {
	Authenticate(email, password string) (User, bool)
}

// Entry is a user with credentials. Either Password or PasswordHash (bcrypt) is set.
type Entry struct {
	User         `yaml:",inline"`
	Password     string `yaml:"password"`
	PasswordHash string `yaml:"password_hash"`
}

// Static is an in-memory Directory
type Static struct {
	users map[string]staticUser // lower-cased email -> user
}

type staticUser struct {
	User
	hash []byte
}

// NewStatic makes a Static directory, plain passwords are hashed with bcrypt
func NewStatic(entries []Entry) (*Static, error) {
	res := &Static{users: make(map[string]staticUser, len(entries))}
	for i, e := range entries {
		if e.Email == "" {
			return nil, fmt.Errorf("user %d: email is required", i+1)
		}
		if e.Role != RoleCandidate && e.Role != RoleCompany {
			return nil, fmt.Errorf("user %s: invalid role %q", e.Email, e.Role)
		}
		key := strings.ToLower(e.Email)
		if _, dup := res.users[key]; dup {
			return nil, fmt.Errorf("user %s: duplicate email", e.Email)
		}

		hash := []byte(e.PasswordHash)
		if len(hash) == 0 {
			if e.Password == "" {
				return nil, fmt.Errorf("user %s: password or password_hash is required", e.Email)
			}
			h, err := bcrypt.GenerateFromPassword([]byte(e.Password), bcrypt.MinCost)
			if err != nil {
				return nil, fmt.Errorf("user %s: failed to hash password: %w", e.Email, err)
			}
			hash = h
		}
		res.users[key] = staticUser{User: e.User, hash: hash}
	}
	return res, nil
}

// Load reads users from a yaml file with a top-level "users" list
func Load(path string) (*Static, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path comes from trusted config
	if err != nil {
		return nil, fmt.Errorf("failed to read users file: %w", err)
	}
	var file struct {
		Users []Entry `yaml:"users"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse users file %s: %w", path, err)
	}
	log.Printf("[DEBUG] loaded %d users from %s", len(file.Users), path)
	return NewStatic(file.Users)
}

// Demo returns the demo users of the board, every password is "123456"
func Demo() *Static {
	res, err := NewStatic([]Entry{
		{User: User{Name: "Mario Rossi", Email: "mario@example.com", Role: RoleCandidate}, Password: "123456"},
		{User: User{Name: "Anna Bianchi", Email: "anna@example.com", Role: RoleCandidate}, Password: "123456"},
		{User: User{Name: "TechCorp", Email: "hr@techcorp.com", Role: RoleCompany}, Password: "123456"},
		{User: User{Name: "DataWorks", Email: "hr@dataworks.com", Role: RoleCompany}, Password: "123456"},
	})
	if err != nil {
		panic(err) // static list, can't fail
	}
	return res
}

// Authenticate returns the user if email is known and password matches
func (s *Static) Authenticate(email, password string) (User, bool) {
	u, ok := s.users[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return User{}, false
	}
	if err := bcrypt.CompareHashAndPassword(u.hash, []byte(password)); err != nil {
		return User{}, false
	}
	return u.User, true
}

// Users returns all known users without credentials
func (s *Static) Users() []User {
	res := make([]User, 0, len(s.users))
	for _, u := range s.users {
		res = append(res, u.User)
	}
	return res
}
