package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agromanager/agromanager-api/internal/domain"
	"github.com/agromanager/agromanager-api/internal/domain/entity"
	"github.com/agromanager/agromanager-api/internal/domain/repository"
)

var _ repository.AnimalRepository = (*AnimalRepo)(nil)

// AnimalRepo implementação de AnimalRepository sobre PostgreSQL (usável com pool ou tx).
type AnimalRepo struct {
	q Querier
}

// NewAnimalRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewAnimalRepository(q Querier) *AnimalRepo {
	return &AnimalRepo{q: q}
}

const animalColumns = `id, name, species, breed, sex, birth_date, identification,
	purpose, initial_weight, notes, acquired_at, origin, purchase_value, created_at`

// Create persiste um animal. Identificação duplicada vira ErrDuplicate.
func (r *AnimalRepo) Create(ctx context.Context, animal *entity.Animal) error {
	query := `
		INSERT INTO animals (id, name, species, breed, sex, birth_date, identification,
			purpose, initial_weight, notes, acquired_at, origin, purchase_value, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		animal.ID, animal.Name, animal.Species, nullIfEmpty(animal.Breed), animal.Sex,
		animal.BirthDate, nullIfEmpty(animal.Identification), nullIfEmpty(animal.Purpose),
		animal.InitialWeight, nullIfEmpty(animal.Notes), animal.AcquiredAt,
		nullIfEmpty(animal.Origin), animal.PurchaseValue, animal.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create animal: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("create animal: %w", err)
	}
	return nil
}

// GetByID obtém um animal por ID. Devolve nil se não existir.
func (r *AnimalRepo) GetByID(ctx context.Context, id string) (*entity.Animal, error) {
	query := `SELECT ` + animalColumns + ` FROM animals WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// GetByIdentification obtém um animal pelo número de identificação.
func (r *AnimalRepo) GetByIdentification(ctx context.Context, identification string) (*entity.Animal, error) {
	query := `SELECT ` + animalColumns + ` FROM animals WHERE identification = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, identification))
}

// Update atualiza os campos editáveis do animal.
func (r *AnimalRepo) Update(ctx context.Context, animal *entity.Animal) error {
	query := `
		UPDATE animals
		SET name = $2, breed = $3, purpose = $4, initial_weight = $5, notes = $6,
			origin = $7, purchase_value = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		animal.ID, animal.Name, nullIfEmpty(animal.Breed), nullIfEmpty(animal.Purpose),
		animal.InitialWeight, nullIfEmpty(animal.Notes), nullIfEmpty(animal.Origin),
		animal.PurchaseValue,
	)
	if err != nil {
		return fmt.Errorf("update animal: %w", err)
	}
	return nil
}

// List lista animais por ID decrescente (mais recentes primeiro), com filtro
// opcional de espécie.
func (r *AnimalRepo) List(ctx context.Context, species string, limit, offset int) ([]*entity.Animal, error) {
	query := `SELECT ` + animalColumns + ` FROM animals`
	args := []any{}
	pos := 1
	if species != "" {
		query += fmt.Sprintf(" WHERE species = $%d", pos)
		args = append(args, species)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list animals: %w", err)
	}
	defer rows.Close()
	var list []*entity.Animal
	for rows.Next() {
		animal, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, animal)
	}
	return list, rows.Err()
}

// Delete exclui um animal.
func (r *AnimalRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM animals WHERE id = $1`
	_, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete animal: %w", err)
	}
	return nil
}

func (r *AnimalRepo) scanOne(row pgx.Row) (*entity.Animal, error) {
	animal, err := scanAnimal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get animal: %w", err)
	}
	return animal, nil
}

func scanAnimal(row pgx.Row) (*entity.Animal, error) {
	var a entity.Animal
	var breed, identification, purpose, notes, origin *string
	err := row.Scan(
		&a.ID, &a.Name, &a.Species, &breed, &a.Sex, &a.BirthDate, &identification,
		&purpose, &a.InitialWeight, &notes, &a.AcquiredAt, &origin, &a.PurchaseValue,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if breed != nil {
		a.Breed = *breed
	}
	if identification != nil {
		a.Identification = *identification
	}
	if purpose != nil {
		a.Purpose = *purpose
	}
	if notes != nil {
		a.Notes = *notes
	}
	if origin != nil {
		a.Origin = *origin
	}
	return &a, nil
}
