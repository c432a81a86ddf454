package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sbastiane/conteo-api/internal/application/dto"
	"github.com/sbastiane/conteo-api/internal/domain"
	"github.com/sbastiane/conteo-api/internal/domain/conteo"
	"github.com/sbastiane/conteo-api/internal/domain/entity"
	"github.com/sbastiane/conteo-api/internal/domain/repository"
)

const cutoffDateLayout = "2006-01-02"

// Policy políticas configurables del ciclo de conteos.
type Policy struct {
	// EditAfterReview permite actualizar la cantidad de un conteo ya revisado.
	EditAfterReview bool
}

// UseCase orquesta el ciclo de vida de los conteos físicos: creación con
// reglas de ronda, consulta, actualización de cantidad, borrado y el flujo
// de revisión administrativa.
type UseCase struct {
	tx         TxRunner
	counts     repository.InventoryCountRepository
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
	policy     Policy
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	tx TxRunner,
	counts repository.InventoryCountRepository,
	products repository.ProductRepository,
	warehouses repository.WarehouseRepository,
	policy Policy,
) *UseCase {
	return &UseCase{
		tx:         tx,
		counts:     counts,
		products:   products,
		warehouses: warehouses,
		policy:     policy,
	}
}

// Create registra un conteo nuevo. Valida producto, bodega activa,
// elegibilidad de la ronda y unicidad de la tupla, y calcula la cantidad en
// unidades a partir del factor de conversión del producto.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateInventoryCountRequest, userID string) (*dto.InventoryCountResponse, error) {
	cutoffDate, err := parseCutoffDate(in.CutoffDate)
	if err != nil {
		return nil, err
	}

	var created *entity.InventoryCount
	err = uc.tx.Run(ctx, func(
		countRepo repository.InventoryCountRepository,
		productRepo repository.ProductRepository,
		warehouseRepo repository.WarehouseRepository,
	) error {
		product, err := productRepo.GetByCode(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.NewNotFoundError("Producto no encontrado")
		}

		warehouse, err := warehouseRepo.GetByCode(ctx, in.WarehouseID)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return domain.NewNotFoundError("Bodega no encontrada")
		}
		if warehouse.Status != entity.WarehouseActive {
			return domain.NewValidationError("La bodega no está activa")
		}

		var previous *entity.InventoryCount
		if in.CountNumber > conteo.MinCountNumber {
			previous, err = countRepo.GetByNaturalKey(ctx, in.ProductID, in.WarehouseID, cutoffDate, in.CountNumber-1)
			if err != nil {
				return err
			}
		}
		if err := conteo.CheckEligibility(in.CountNumber, previous); err != nil {
			return err
		}

		existing, err := countRepo.GetByNaturalKey(ctx, in.ProductID, in.WarehouseID, cutoffDate, in.CountNumber)
		if err != nil {
			return err
		}
		if existing != nil {
			return duplicateTupleError(in.CountNumber)
		}

		unitQuantity, err := conteo.ConvertPackageToUnits(in.PackageQuantity, product.ConversionFactor)
		if err != nil {
			return err
		}

		now := time.Now()
		created = &entity.InventoryCount{
			ID:              uuid.New().String(),
			CountNumber:     in.CountNumber,
			CutoffDate:      cutoffDate,
			WarehouseCode:   in.WarehouseID,
			ProductCode:     in.ProductID,
			PackageQuantity: in.PackageQuantity,
			UnitQuantity:    unitQuantity,
			Status:          entity.CountPending,
			UserID:          userID,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		return countRepo.Create(ctx, created)
	})
	if err != nil {
		return nil, err
	}
	return uc.detailResponse(ctx, created.ID)
}

// List devuelve los conteos que cumplen los filtros, ordenados por fecha de
// corte descendente, ronda ascendente y creación descendente.
func (uc *UseCase) List(ctx context.Context, in dto.QueryInventoryCountRequest) ([]dto.InventoryCountResponse, error) {
	filter := repository.InventoryCountFilter{
		CountNumber:   in.CountNumber,
		WarehouseCode: in.WarehouseID,
		ProductCode:   in.ProductID,
	}
	if in.CutoffDate != nil {
		cutoffDate, err := parseCutoffDate(*in.CutoffDate)
		if err != nil {
			return nil, err
		}
		filter.CutoffDate = &cutoffDate
	}

	details, err := uc.counts.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryCountResponse, 0, len(details))
	for _, d := range details {
		items = append(items, *toInventoryCountResponse(d))
	}
	return items, nil
}

// GetByID obtiene un conteo por ID con producto, bodega y usuario.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.InventoryCountResponse, error) {
	return uc.detailResponse(ctx, id)
}

// Update cambia la cantidad de empaques y recalcula la cantidad en unidades
// con el factor de conversión del producto del registro. No toca el estado;
// con la política por defecto solo se permite sobre conteos PENDING.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateInventoryCountRequest, userID string) (*dto.InventoryCountResponse, error) {
	count, err := uc.getCount(ctx, id)
	if err != nil {
		return nil, err
	}
	if !uc.policy.EditAfterReview && count.Status != entity.CountPending {
		return nil, domain.NewValidationError("El conteo ya fue revisado y no puede modificarse")
	}

	product, err := uc.products.GetByCode(ctx, count.ProductCode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NewNotFoundError("Producto no encontrado")
	}

	unitQuantity, err := conteo.ConvertPackageToUnits(in.PackageQuantity, product.ConversionFactor)
	if err != nil {
		return nil, err
	}

	count.PackageQuantity = in.PackageQuantity
	count.UnitQuantity = unitQuantity
	count.UserID = userID
	count.UpdatedAt = time.Now()
	if err := uc.counts.Update(ctx, count); err != nil {
		return nil, err
	}
	return uc.detailResponse(ctx, id)
}

// Delete elimina un conteo. Se rechaza si ya existe una ronda posterior para
// la misma tupla: borrarlo dejaría colgada la cadena de elegibilidad.
func (uc *UseCase) Delete(ctx context.Context, id string) (string, error) {
	count, err := uc.getCount(ctx, id)
	if err != nil {
		return "", err
	}
	if count.CountNumber < conteo.MaxCountNumber {
		next, err := uc.counts.GetByNaturalKey(ctx, count.ProductCode, count.WarehouseCode, count.CutoffDate, count.CountNumber+1)
		if err != nil {
			return "", err
		}
		if next != nil {
			return "", domain.NewValidationError("No es posible eliminar un conteo que ya tiene un reconteo posterior")
		}
	}
	if err := uc.counts.Delete(ctx, id); err != nil {
		return "", err
	}
	return "Registro de inventario eliminado correctamente", nil
}

// Approve aprueba un conteo PENDING.
func (uc *UseCase) Approve(ctx context.Context, id, adminID string, notes *string) (*dto.InventoryCountResponse, error) {
	count, err := uc.getCount(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := conteo.Approve(count, adminID, notes, time.Now()); err != nil {
		return nil, err
	}
	if err := uc.counts.Update(ctx, count); err != nil {
		return nil, err
	}
	return uc.detailResponse(ctx, id)
}

// Reject rechaza un conteo PENDING; las notas son obligatorias.
func (uc *UseCase) Reject(ctx context.Context, id, adminID, notes string) (*dto.InventoryCountResponse, error) {
	count, err := uc.getCount(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := conteo.Reject(count, adminID, notes, time.Now()); err != nil {
		return nil, err
	}
	if err := uc.counts.Update(ctx, count); err != nil {
		return nil, err
	}
	return uc.detailResponse(ctx, id)
}

// RequestRecount libera un conteo PENDING para la ronda siguiente.
func (uc *UseCase) RequestRecount(ctx context.Context, id, adminID string, notes *string) (*dto.InventoryCountResponse, error) {
	count, err := uc.getCount(ctx, id)
	if err != nil {
		return nil, err
	}

	nextRoundExists := false
	if count.CountNumber < conteo.MaxCountNumber {
		next, err := uc.counts.GetByNaturalKey(ctx, count.ProductCode, count.WarehouseCode, count.CutoffDate, count.CountNumber+1)
		if err != nil {
			return nil, err
		}
		nextRoundExists = next != nil
	}

	if err := conteo.RequestRecount(count, adminID, notes, nextRoundExists, time.Now()); err != nil {
		return nil, err
	}
	if err := uc.counts.Update(ctx, count); err != nil {
		return nil, err
	}
	return uc.detailResponse(ctx, id)
}

func (uc *UseCase) getCount(ctx context.Context, id string) (*entity.InventoryCount, error) {
	count, err := uc.counts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if count == nil {
		return nil, domain.NewNotFoundError("Registro de inventario no encontrado")
	}
	return count, nil
}

func (uc *UseCase) detailResponse(ctx context.Context, id string) (*dto.InventoryCountResponse, error) {
	detail, err := uc.counts.GetDetailByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.NewNotFoundError("Registro de inventario no encontrado")
	}
	return toInventoryCountResponse(detail), nil
}

func parseCutoffDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(cutoffDateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, domain.NewValidationError("Formato de fecha inválido (YYYY-MM-DD)")
	}
	return d, nil
}

func duplicateTupleError(countNumber int) error {
	return domain.NewValidationError(fmt.Sprintf(
		"Ya existe un registro para el conteo %d de este producto en esta bodega y fecha", countNumber))
}

func toInventoryCountResponse(d *entity.InventoryCountDetail) *dto.InventoryCountResponse {
	return &dto.InventoryCountResponse{
		ID:              d.ID,
		CountNumber:     d.CountNumber,
		CutoffDate:      d.CutoffDate.Format(cutoffDateLayout),
		WarehouseID:     d.WarehouseCode,
		ProductID:       d.ProductCode,
		PackageQuantity: d.PackageQuantity,
		UnitQuantity:    d.UnitQuantity,
		Status:          string(d.Status),
		ReviewedBy:      d.ReviewedBy,
		ReviewedAt:      d.ReviewedAt,
		ReviewNotes:     d.ReviewNotes,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
		Product: dto.ProductResponse{
			Code:             d.Product.Code,
			Description:      d.Product.Description,
			PackagingUnit:    string(d.Product.PackagingUnit),
			ConversionFactor: d.Product.ConversionFactor,
		},
		Warehouse: dto.WarehouseResponse{
			Code:        d.Warehouse.Code,
			Description: d.Warehouse.Description,
			Status:      string(d.Warehouse.Status),
		},
		User: dto.InventoryCountUserSummary{
			ID:             d.User.ID,
			Identification: d.User.Identification,
			Name:           d.User.Name,
		},
	}
}
