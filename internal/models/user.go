package models

import "time"

// Role роль пользователя системы.
type Role string

const (
	RoleCoach Role = "coach"
	RoleAdmin Role = "admin"
)

// UnmarshalJSON отклоняет роли вне перечисления.
func (r *Role) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, r, []Role{RoleCoach, RoleAdmin})
}

// User учётная запись. Владельцем записи является сам пользователь.
type User struct {
	Base
	Email        string         `json:"email"`
	PasswordHash string         `json:"passwordHash"`
	Role         Role           `json:"role"`
	Name         string         `json:"name"`
	Avatar       *string        `json:"avatar"`
	Profile      map[string]any `json:"profile"`
	IsActive     bool           `json:"isActive"`
	LastLogin    *time.Time     `json:"lastLogin"`
}

// Status возвращает статус записи для движка коллекций.
func (u *User) Status() string {
	if u.IsActive {
		return "active"
	}
	return "inactive"
}

// UserView представление пользователя в ответах API, без хэша пароля.
type UserView struct {
	ID        string         `json:"id"`
	Email     string         `json:"email"`
	Name      string         `json:"name"`
	Role      Role           `json:"role"`
	Avatar    *string        `json:"avatar"`
	Profile   map[string]any `json:"profile"`
	CreatedAt *time.Time     `json:"createdAt,omitempty"`
	LastLogin *time.Time     `json:"lastLogin"`
}

// View формирует представление пользователя для ответа.
func (u *User) View() UserView {
	created := u.CreatedAt
	return UserView{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Avatar:    u.Avatar,
		Profile:   u.Profile,
		CreatedAt: &created,
		LastLogin: u.LastLogin,
	}
}

// LoginRequest тело запроса на вход.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterRequest тело запроса на регистрацию.
type RegisterRequest struct {
	Email    string         `json:"email" validate:"required,email"`
	Password string         `json:"password" validate:"required,min=6"`
	Name     string         `json:"name" validate:"required,min=2"`
	Role     Role           `json:"role" validate:"omitempty,oneof=coach admin"`
	Profile  map[string]any `json:"profile,omitempty"`
}

// ProfilePatch частичное обновление учётной записи. Profile сливается
// с текущим содержимым, а не заменяет его.
type ProfilePatch struct {
	Name    *string        `json:"name,omitempty" validate:"omitempty,min=2"`
	Profile map[string]any `json:"profile,omitempty"`
}

// Apply применяет патч к пользователю.
func (p ProfilePatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Profile != nil {
		merged := make(map[string]any, len(u.Profile)+len(p.Profile))
		for k, v := range u.Profile {
			merged[k] = v
		}
		for k, v := range p.Profile {
			merged[k] = v
		}
		u.Profile = merged
	}
}

// LoginPatch отмечает успешный вход.
type LoginPatch struct {
	At time.Time
}

// Apply выставляет время последнего входа.
func (p LoginPatch) Apply(u *User) {
	at := p.At
	u.LastLogin = &at
}
