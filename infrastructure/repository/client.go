// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/ecoclean/fidelidade-api/infrastructure/database/postgres"
	"github.com/ecoclean/fidelidade-api/internal/domain"
)

const clientsTable = "clients c"

// ErrDuplicateCNPJ indica violação da chave única de CNPJ no cadastro.
var ErrDuplicateCNPJ = errors.New("cnpj already registered")

// uniqueViolation é o código do Postgres para violação de constraint única.
const uniqueViolation = "23505"

type ClientRepository interface {
	Create(client *domain.Client) (*domain.Client, error)
	GetByID(clientID string) (*domain.Client, error)
	GetByName(name string) (*domain.Client, error)
	List() ([]*domain.Client, error)
	Update(client *domain.Client) error
}

type clientRepository struct {
	conn *postgres.Connection
}

func NewClientRepository(conn *postgres.Connection) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

func (r *clientRepository) Create(client *domain.Client) (*domain.Client, error) {
	query, args, err := squirrel.
		Insert("clients").
		Columns("id", "name", "city", "neighborhood", "street", "number", "phone", "cnpj", "benefits").
		Values(
			client.ID,
			client.Name,
			client.City,
			client.Neighborhood,
			client.Street,
			client.Number,
			client.Phone,
			client.CNPJ,
			pq.Array(client.Benefits),
		).
		Suffix("RETURNING registered_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&client.RegisteredAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateCNPJ
		}
		return nil, fmt.Errorf("erro ao inserir cliente: %w", err)
	}

	return client, nil
}

func (r *clientRepository) GetByID(clientID string) (*domain.Client, error) {
	return r.getClient(squirrel.Eq{"c.id": clientID})
}

// GetByName busca um cliente pelo nome exato, sem diferenciar maiúsculas.
// Usado pelo fluxo de compra por QR Code, que identifica o cliente pelo nome.
func (r *clientRepository) GetByName(name string) (*domain.Client, error) {
	return r.getClient(squirrel.Expr("LOWER(c.name) = LOWER(?)", name))
}

func (r *clientRepository) getClient(whereClause interface{}) (*domain.Client, error) {
	query, args, err := squirrel.
		Select("c.id, c.name, c.city, c.neighborhood, c.street, c.number, c.phone, c.cnpj, c.benefits, c.registered_at").
		From(clientsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	client, err := r.deserializeClient(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return client, nil
}

func (r *clientRepository) List() ([]*domain.Client, error) {
	query, args, err := squirrel.
		Select("c.id, c.name, c.city, c.neighborhood, c.street, c.number, c.phone, c.cnpj, c.benefits, c.registered_at").
		From(clientsTable).
		OrderBy("c.registered_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)

	for rows.Next() {
		client := &domain.Client{}
		var benefits pq.StringArray

		if err := rows.Scan(
			&client.ID,
			&client.Name,
			&client.City,
			&client.Neighborhood,
			&client.Street,
			&client.Number,
			&client.Phone,
			&client.CNPJ,
			&benefits,
			&client.RegisteredAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}

		client.Benefits = benefits
		clients = append(clients, client)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return clients, nil
}

func (r *clientRepository) Update(client *domain.Client) error {
	query, args, err := squirrel.
		Update("clients").
		Set("name", client.Name).
		Set("city", client.City).
		Set("neighborhood", client.Neighborhood).
		Set("street", client.Street).
		Set("number", client.Number).
		Set("phone", client.Phone).
		Set("cnpj", client.CNPJ).
		Set("benefits", pq.Array(client.Benefits)).
		Where(squirrel.Eq{"id": client.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return ErrDuplicateCNPJ
		}
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}

	return nil
}

func (r *clientRepository) deserializeClient(row *sql.Row) (*domain.Client, error) {
	client := &domain.Client{}
	var benefits pq.StringArray

	if err := row.Scan(
		&client.ID,
		&client.Name,
		&client.City,
		&client.Neighborhood,
		&client.Street,
		&client.Number,
		&client.Phone,
		&client.CNPJ,
		&benefits,
		&client.RegisteredAt,
	); err != nil {
		return nil, err
	}

	client.Benefits = benefits

	return client, nil
}
