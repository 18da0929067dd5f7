package entity

// Category representa uma categoria de itens do estoque.
// É dona dos itens: excluir a categoria exclui os itens em cascata.
type Category struct {
	ID   string
	Name string
}
