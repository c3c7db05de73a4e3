// Package psqlbuilder fixa o squirrel no formato de placeholder do Postgres
// ($1, $2, ...) para que os repositórios não precisem repetir a configuração.
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select cria um SELECT com placeholders $N
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert cria um INSERT com placeholders $N
func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

// Update cria um UPDATE com placeholders $N
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete cria um DELETE com placeholders $N
func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}
