package ports

import "context"

// UnitOfWork agrupa as operações de repositório feitas dentro de fn numa
// única transação. Repositórios chamados com o ctx recebido por fn
// participam dela; qualquer erro retornado por fn desfaz tudo.
type UnitOfWork interface {
	WithTransaction(ctx context.Context, fn func(txCtx context.Context) error) error
}
