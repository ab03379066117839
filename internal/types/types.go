// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности в пределах одной игровой сессии.
type EntityID uint64
