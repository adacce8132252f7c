package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dcastano/almacen-api/internal/domain"
	"github.com/dcastano/almacen-api/internal/domain/entity"
	"github.com/dcastano/almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `p.id, p.product_id, p.name, p.quantity, p.price, p.supplier_id,
	COALESCE(s.name, ''), p.manufactured_date, p.expiry_date, p.unit, p.status, p.created_at, p.updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, product_id, name, quantity, price, supplier_id, manufactured_date, expiry_date, unit, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.ProductID, product.Name, product.Quantity, product.Price,
		product.SupplierID, product.ManufacturedDate, product.ExpiryDate, product.Unit,
		product.Status, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID de almacenamiento.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p LEFT JOIN suppliers s ON s.id = p.supplier_id
		WHERE p.id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product")
}

// GetByProductID obtiene un producto por su clave de negocio (ej: P-1001).
func (r *ProductRepo) GetByProductID(productID string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p LEFT JOIN suppliers s ON s.id = p.supplier_id
		WHERE p.product_id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, productID), "get product by product_id")
}

// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE). Solo tiene
// sentido dentro de una transacción; lo usa la salida de stock para que el
// check de cantidad y la escritura sean atómicos.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `
		SELECT id, product_id, name, quantity, price, supplier_id, '', manufactured_date, expiry_date, unit, status, created_at, updated_at
		FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product for update")
}

// UpdateQuantityStatus escribe cantidad y estado en una sola sentencia.
// El guard quantity >= decremento ya se garantizó con el FOR UPDATE previo.
func (r *ProductRepo) UpdateQuantityStatus(id string, quantity int, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity = $2, status = $3, updated_at = $4 WHERE id = $1`,
		id, quantity, status, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update product quantity/status: %w", err)
	}
	return nil
}

// UpdateStatus escribe solo el estado (obsolete / restore).
func (r *ProductRepo) UpdateStatus(id string, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update product status: %w", err)
	}
	return nil
}

// List lista todos los productos con el nombre del proveedor resuelto.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p LEFT JOIN suppliers s ON s.id = p.supplier_id
		ORDER BY p.created_at DESC`
	return r.list(ctx, query)
}

// ListByStatus lista productos filtrados por estado (ej: obsolete).
func (r *ProductRepo) ListByStatus(ctx context.Context, status string) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p LEFT JOIN suppliers s ON s.id = p.supplier_id
		WHERE p.status = $1
		ORDER BY p.created_at DESC`
	return r.list(ctx, query, status)
}

func (r *ProductRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.ProductID, &p.Name, &p.Quantity, &p.Price, &p.SupplierID,
			&p.SupplierName, &p.ManufacturedDate, &p.ExpiryDate, &p.Unit, &p.Status,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.ProductID, &p.Name, &p.Quantity, &p.Price, &p.SupplierID,
		&p.SupplierName, &p.ManufacturedDate, &p.ExpiryDate, &p.Unit, &p.Status,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
