package inventory

import (
	"context"

	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
)

// TxRunner executa fn dentro de uma transação, com repos atados à tx.
// Commit se fn devolve nil, Rollback caso contrário.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// MovementUseCase registra e remove movimentações de estoque de forma transacional,
// com bloqueio da fila do produto (SELECT FOR UPDATE) até commit/rollback.
//
// Política de movimentação: os tipos aceitos são exatamente ENTRADA (soma a
// quantidade) e SAIDA (subtrai). A quantidade é sempre positiva; uma SAIDA que
// deixaria o estoque negativo é rejeitada.
type MovementUseCase struct {
	txRunner TxRunner
	movRepo  repository.MovementRepository
}

// NewMovementUseCase constrói o caso de uso. movRepo é usado nas leituras fora de transação.
func NewMovementUseCase(txRunner TxRunner, movRepo repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner, movRepo: movRepo}
}

// RegisterMovement aplica uma movimentação: inicia transação, bloqueia a fila do
// produto, insere a linha do ledger e regrava a quantidade recalculada.
// Duas movimentações simultâneas sobre o mesmo produto serializam no lock;
// produtos diferentes não se bloqueiam.
func (uc *MovementUseCase) RegisterMovement(ctx context.Context, tipo string, quantidade, productID int64) (*entity.Movement, error) {
	if !entity.ValidMovementType(tipo) {
		return nil, domain.ErrInvalidInput
	}
	if quantidade <= 0 {
		return nil, domain.ErrInvalidInput
	}

	movement := &entity.Movement{
		Tipo:       tipo,
		Quantidade: quantidade,
		ProductID:  productID,
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		novaQuantidade := product.QuantidadeEstoque + movement.Delta()
		if novaQuantidade < 0 {
			return domain.ErrInsufficientStock
		}

		if err := movRepo.Create(movement); err != nil {
			return err
		}
		return productRepo.UpdateQuantidade(productID, novaQuantidade)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// ListSaidas lista as movimentações de SAIDA com o nome do produto, mais recente primeiro.
func (uc *MovementUseCase) ListSaidas() ([]*entity.MovementWithProduct, error) {
	return uc.movRepo.ListSaidas()
}

// DeleteMovement remove uma linha do ledger revertendo seu efeito sobre o estoque,
// na mesma transação e sob o mesmo lock de fila do RegisterMovement. Assim a
// invariante quantidade == soma assinada do ledger continua valendo após exclusões.
// Reverter uma ENTRADA cujo saldo já foi consumido é rejeitado.
func (uc *MovementUseCase) DeleteMovement(ctx context.Context, id int64) (*entity.Movement, error) {
	var deleted *entity.Movement

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		movement, err := movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if movement == nil {
			return domain.ErrNotFound
		}

		product, err := productRepo.GetForUpdate(movement.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			// FK com ON DELETE CASCADE: sem produto não há movimentação órfã.
			return domain.ErrNotFound
		}

		novaQuantidade := product.QuantidadeEstoque - movement.Delta()
		if novaQuantidade < 0 {
			return domain.ErrInsufficientStock
		}

		if _, err := movRepo.Delete(id); err != nil {
			return err
		}
		if err := productRepo.UpdateQuantidade(movement.ProductID, novaQuantidade); err != nil {
			return err
		}
		deleted = movement
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
