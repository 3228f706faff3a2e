package usecase

import (
	"fmt"
	"time"

	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
	"golang.org/x/text/unicode/norm"
)

// Formato aceito para a data de entrada no cadastro.
const entradaLayout = "2006-01-02"

// ProductUseCase casos de uso de produto. A quantidade em estoque só muda via
// movimentação; aqui ela apenas é gravada no cadastro inicial.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List lista todos os produtos por nome ascendente, com o valor total derivado.
func (uc *ProductUseCase) List() ([]dto.ProductListItem, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductListItem, 0, len(products))
	for _, p := range products {
		items = append(items, dto.ProductListItem{
			Nome:       p.Nome,
			Valor:      p.ValorUnitario,
			Quantidade: p.QuantidadeEstoque,
			ValorTotal: p.ValorTotal(),
		})
	}
	return items, nil
}

// Add cadastra um produto. Nome duplicado devolve ErrDuplicate; data de entrada
// fora do formato AAAA-MM-DD devolve ErrInvalidInput. Nomes são normalizados em
// NFC para que acentos compostos e pré-compostos caiam na mesma linha.
func (uc *ProductUseCase) Add(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	entrada, err := time.Parse(entradaLayout, in.Entrada)
	if err != nil {
		return nil, fmt.Errorf("%w: data de entrada %q", domain.ErrInvalidInput, in.Entrada)
	}
	nome := norm.NFC.String(in.Nome)

	existing, err := uc.repo.GetByNome(nome)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	product := &entity.Product{
		Nome:              nome,
		ValorUnitario:     *in.Valor,
		QuantidadeEstoque: *in.Quantidade,
		DataCadastro:      entrada,
		MinimoEstoque:     *in.Minimo,
		MaximoEstoque:     *in.Maximo,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByNome obtém um produto pelo nome. ErrNotFound quando não existe.
func (uc *ProductUseCase) GetByNome(nome string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByNome(norm.NFC.String(nome))
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// VerificarEstoque devolve os produtos com quantidade <= mínimo OU >= máximo.
// Lista vazia devolve ErrNotFound: "nada a reportar" sai como 404 na API.
func (uc *ProductUseCase) VerificarEstoque() ([]dto.ProductListItem, error) {
	products, err := uc.repo.ListEstoqueCritico()
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, domain.ErrNotFound
	}
	items := make([]dto.ProductListItem, 0, len(products))
	for _, p := range products {
		items = append(items, dto.ProductListItem{
			Nome:       p.Nome,
			Valor:      p.ValorUnitario,
			Quantidade: p.QuantidadeEstoque,
			ValorTotal: p.ValorTotal(),
		})
	}
	return items, nil
}

// Delete remove um produto por ID e devolve o registro removido.
func (uc *ProductUseCase) Delete(id int64) (*entity.Product, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	return product, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Nome:         p.Nome,
		Valor:        p.ValorUnitario,
		Quantidade:   p.QuantidadeEstoque,
		Minimo:       p.MinimoEstoque,
		Maximo:       p.MaximoEstoque,
		DataCadastro: p.DataCadastro,
	}
}
