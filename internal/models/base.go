// Package models содержит доменные сущности FitCoach Pro: пользователей,
// тренеров, клиентов, тренировки и зарегистрированные устройства,
// а также типизированные статусы и патчи для частичного обновления.
package models

import "time"

// Base общие служебные поля любой хранимой сущности.
type Base struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"coachId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Meta возвращает служебные поля сущности для движка коллекций.
func (b *Base) Meta() *Base {
	return b
}
