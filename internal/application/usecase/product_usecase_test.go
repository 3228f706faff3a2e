package usecase_test

import (
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/application/usecase"
	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de ProductRepository em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[int64]*entity.Product
	nextID   int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[int64]*entity.Product{}, nextID: 1}
}

func (r *fakeProductRepo) Create(product *entity.Product) error {
	for _, p := range r.products {
		if p.Nome == product.Nome {
			return domain.ErrDuplicate
		}
	}
	product.ID = r.nextID
	r.nextID++
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByNome(nome string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Nome == nome {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}

func (r *fakeProductRepo) ListEstoqueCritico() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0)
	for _, p := range r.products {
		if p.EstoqueCritico() {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) GetForUpdate(id int64) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) UpdateQuantidade(id int64, quantidade int64) error {
	if p, ok := r.products[id]; ok {
		p.QuantidadeEstoque = quantidade
	}
	return nil
}

func (r *fakeProductRepo) Delete(id int64) (bool, error) {
	if _, ok := r.products[id]; !ok {
		return false, nil
	}
	delete(r.products, id)
	return true, nil
}

func seedProduct(t *testing.T, repo *fakeProductRepo, nome string, qtd, min, max int64) *entity.Product {
	t.Helper()
	p := &entity.Product{
		Nome:              nome,
		ValorUnitario:     decimal.NewFromFloat(10.50),
		QuantidadeEstoque: qtd,
		MinimoEstoque:     min,
		MaximoEstoque:     max,
	}
	require.NoError(t, repo.Create(p))
	return p
}

func addRequest(nome string) dto.CreateProductRequest {
	valor := decimal.NewFromFloat(10.50)
	return dto.CreateProductRequest{
		Nome:       nome,
		Valor:      &valor,
		Entrada:    "2026-01-15",
		Quantidade: ptr(int64(20)),
		Minimo:     ptr(int64(5)),
		Maximo:     ptr(int64(100)),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Add / GetByNome
// ──────────────────────────────────────────────────────────────────────────────

func TestProductAdd_CadastraEConsulta(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Add(addRequest("Teclado"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Teclado", created.Nome)
	assert.Equal(t, int64(20), created.Quantidade)
	assert.Equal(t, "2026-01-15", created.DataCadastro.Format("2006-01-02"))

	found, err := uc.GetByNome("Teclado")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestProductAdd_NomeDuplicado_Rejeitado(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Add(addRequest("Teclado"))
	require.NoError(t, err)

	_, err = uc.Add(addRequest("Teclado"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductAdd_DataEntradaInvalida(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	in := addRequest("Teclado")
	in.Entrada = "15/01/2026"
	_, err := uc.Add(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"data fora de AAAA-MM-DD deve ser rejeitada")
}

func TestProductAdd_NomesUnicodeNormalizados(t *testing.T) {
	// "Café" (pré-composto) e "Café" (combinante) devem cair na mesma linha.
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Add(addRequest("Café"))
	require.NoError(t, err)

	_, err = uc.Add(addRequest("Café"))
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"formas NFC e NFD do mesmo nome são o mesmo produto")

	found, err := uc.GetByNome("Café")
	require.NoError(t, err)
	assert.Equal(t, "Café", found.Nome)
}

func TestProductGetByNome_NaoEncontrado(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.GetByNome("Inexistente")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests List / VerificarEstoque
// ──────────────────────────────────────────────────────────────────────────────

func TestProductList_ValorTotalDerivado(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	seedProduct(t, repo, "Teclado", 4, 1, 100)

	items, err := uc.List()
	require.NoError(t, err)
	require.Len(t, items, 1)

	// 10.50 × 4 = 42.00
	assert.True(t, items[0].ValorTotal.Equal(decimal.NewFromFloat(42.0)),
		"valor_total deve ser valor × quantidade, calculado com decimal")
}

func TestVerificarEstoque_LimitesInclusivos(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	seedProduct(t, repo, "NoMinimo", 5, 5, 100)   // quantidade == mínimo → alerta
	seedProduct(t, repo, "NoMaximo", 100, 5, 100) // quantidade == máximo → alerta
	seedProduct(t, repo, "NaFaixa", 50, 5, 100)   // dentro da faixa → fora da lista

	items, err := uc.VerificarEstoque()
	require.NoError(t, err)

	nomes := make([]string, 0, len(items))
	for _, it := range items {
		nomes = append(nomes, it.Nome)
	}
	assert.ElementsMatch(t, []string{"NoMinimo", "NoMaximo"}, nomes,
		"os limites contam: == mínimo e == máximo entram no alerta")
}

func TestVerificarEstoque_NadaAReportar(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	seedProduct(t, repo, "NaFaixa", 50, 5, 100)

	_, err := uc.VerificarEstoque()
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"lista vazia sai como não-encontrado para a API")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestProductDelete_DevolveRegistroRemovido(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	p := seedProduct(t, repo, "Teclado", 10, 1, 100)

	deleted, err := uc.Delete(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Teclado", deleted.Nome)

	_, err = uc.GetByNome("Teclado")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete_NaoEncontrado(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Delete(999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
