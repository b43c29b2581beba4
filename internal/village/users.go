package village

import (
	"fmt"

	"gramgrid/internal/model"
)

// CreateUser adds a new user and returns the stored record.
// Email uniqueness is not enforced here; callers that care look the email
// up first. The role defaults to "user" when empty.
func (r *Repository) CreateUser(u model.User) (*model.User, error) {
	if u.Role == "" {
		u.Role = model.RoleUser
	}
	if !u.Role.Valid() {
		return nil, fmt.Errorf("invalid role: %q", u.Role)
	}

	var users []model.User
	if err := r.collections.Read(colUsers, &users); err != nil {
		return nil, err
	}

	u.ID = r.idgen.New()
	now := r.now()
	u.CreatedAt = now
	u.UpdatedAt = now
	users = append(users, u)

	if err := r.collections.Write(colUsers, users); err != nil {
		return nil, err
	}
	r.logger.Debug("user created", "id", u.ID, "email", u.Email)
	return &u, nil
}

// GetUserByID returns the user with the given ID, or nil if absent.
func (r *Repository) GetUserByID(id string) (*model.User, error) {
	var users []model.User
	if err := r.collections.Read(colUsers, &users); err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

// GetUserByEmail returns the first user with the given email, or nil.
func (r *Repository) GetUserByEmail(email string) (*model.User, error) {
	var users []model.User
	if err := r.collections.Read(colUsers, &users); err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

// GetUsersByVillage returns all users attached to a village, in insertion order.
func (r *Repository) GetUsersByVillage(villageID string) ([]model.User, error) {
	var users []model.User
	if err := r.collections.Read(colUsers, &users); err != nil {
		return nil, err
	}
	var out []model.User
	for _, u := range users {
		if u.VillageID == villageID {
			out = append(out, u)
		}
	}
	return out, nil
}

// CountUsers returns the number of stored users.
func (r *Repository) CountUsers() (int, error) {
	var users []model.User
	if err := r.collections.Read(colUsers, &users); err != nil {
		return 0, err
	}
	return len(users), nil
}
