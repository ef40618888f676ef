package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventario-micro/internal/application/dto"
	"github.com/tu-usuario/inventario-micro/internal/application/ports"
	"github.com/tu-usuario/inventario-micro/internal/domain"
	"github.com/tu-usuario/inventario-micro/internal/domain/entity"
	"github.com/tu-usuario/inventario-micro/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD de ítems de inventario más la verificación de
// propiedad que consumen los servicios de producto y chart. El borrado de un
// ítem cascadea a sus productos a través del ProductPurger remoto.
type ItemUseCase struct {
	repo   repository.ItemRepository
	purger ports.ProductPurger
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, purger ports.ProductPurger) *ItemUseCase {
	return &ItemUseCase{repo: repo, purger: purger}
}

// CheckOwnership responde si el ítem existe y pertenece al usuario. Un ítem de
// otro usuario y un ítem inexistente son indistinguibles: ambos false.
func (uc *ItemUseCase) CheckOwnership(itemID, userID string) (bool, error) {
	item, err := uc.repo.GetByIDAndUser(itemID, userID)
	if err != nil {
		return false, err
	}
	return item != nil, nil
}

// List lista los ítems del usuario.
func (uc *ItemUseCase) List(userID string) ([]dto.ItemResponse, error) {
	items, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return out, nil
}

// Get obtiene un ítem del usuario. ErrNotFound si no existe o no es suyo.
func (uc *ItemUseCase) Get(itemID, userID string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByIDAndUser(itemID, userID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// Create crea un ítem para el usuario.
func (uc *ItemUseCase) Create(userID string, in dto.ItemRequest) (*dto.ItemResponse, error) {
	item := &entity.Item{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Type:      in.Type,
		CreatedAt: time.Now(),
		UserID:    userID,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Update reemplaza name y type de un ítem del usuario (ambos obligatorios, el
// handler ya los validó). ErrNotFound si no existe o no es suyo.
func (uc *ItemUseCase) Update(itemID, userID string, in dto.ItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByIDAndUser(itemID, userID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	item.Name = in.Name
	item.Type = in.Type
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete elimina un ítem del usuario con cascada: primero verifica la
// propiedad local, luego pide al servicio de productos purgar los productos
// del ítem (cero productos es un no-op válido) y solo si la purga respondió
// borra el registro local. Si la purga falla, el ítem se conserva y el fallo
// se propaga al llamador.
func (uc *ItemUseCase) Delete(token, itemID, userID string) error {
	item, err := uc.repo.GetByIDAndUser(itemID, userID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if _, err := uc.purger.DeleteAll(token, itemID); err != nil {
		return fmt.Errorf("purgar productos del ítem %s: %w", itemID, err)
	}
	deleted, err := uc.repo.DeleteByIDAndUser(itemID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Type:        it.Type,
		CreatedDate: it.CreatedAt,
		UserID:      it.UserID,
	}
}
