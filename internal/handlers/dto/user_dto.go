package dto

import (
	"time"

	"github.com/rafabene/staffdir-backend/internal/domain/entities"
)

// RegisterRequest representa os campos texto do formulário multipart de registro.
// Os valores chegam ao validador como enviados; a foto é lida à parte via FormFile.
type RegisterRequest struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Phone    string `form:"phone"`
	Position string `form:"position"`
}

// RegisterResponse representa a resposta 201 do registro
type RegisterResponse struct {
	Success bool   `json:"success"`
	UserID  uint   `json:"user_id"`
	Message string `json:"message"`
}

// UserResponse representa um registro de pessoa
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Position  string    `json:"position"`
	Photo     string    `json:"photo"`
	CreatedAt time.Time `json:"created_at"`
}

// UsersResponse representa uma página da listagem
type UsersResponse struct {
	Success    bool           `json:"success"`
	TotalPages int            `json:"total_pages"`
	TotalUsers int64          `json:"total_users"`
	Count      int            `json:"count"`
	Page       int            `json:"page"`
	Links      Links          `json:"links"`
	Users      []UserResponse `json:"users"`
}

// Links contém a navegação; null nas bordas
type Links struct {
	NextURL *string `json:"next_url"`
	PrevURL *string `json:"prev_url"`
}

// PositionResponse representa um cargo distinto
type PositionResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// PositionsResponse representa a resposta de /positions
type PositionsResponse struct {
	Success   bool               `json:"success"`
	Positions []PositionResponse `json:"positions"`
}

// TokenResponse representa a resposta de /token
type TokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// AdminResponse representa o resultado das rotas de manutenção
type AdminResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

// ToUserResponse converte uma entidade Person para UserResponse
func ToUserResponse(person *entities.Person) UserResponse {
	return UserResponse{
		ID:        person.ID,
		Name:      person.Name,
		Email:     person.Email.String(),
		Phone:     person.Phone.String(),
		Position:  person.Position,
		Photo:     person.Photo,
		CreatedAt: person.CreatedAt,
	}
}

// ToUserResponses converte uma lista de entidades Person para UserResponse
func ToUserResponses(persons []*entities.Person) []UserResponse {
	responses := make([]UserResponse, len(persons))
	for i, person := range persons {
		responses[i] = ToUserResponse(person)
	}
	return responses
}

// ToPositionResponses converte cargos para a resposta
func ToPositionResponses(positions []entities.Position) []PositionResponse {
	responses := make([]PositionResponse, len(positions))
	for i, position := range positions {
		responses[i] = PositionResponse{ID: position.ID, Name: position.Name}
	}
	return responses
}
