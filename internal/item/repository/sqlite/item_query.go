package sqlite

import (
	"strings"

	repo "inventory-service/internal/item/repository"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildFilter builds the WHERE clause + args shared by the count and page queries.
func (r *implRepository) buildFilter(opt repo.ListItemsOptions) (string, []any) {
	if opt.Query == "" {
		return "", nil
	}
	return ` WHERE name LIKE ? ESCAPE '\'`, []any{"%" + likeEscaper.Replace(opt.Query) + "%"}
}

// buildListQuery builds the WHERE + ORDER + LIMIT + OFFSET clause for ListItems.
func (r *implRepository) buildListQuery(opt repo.ListItemsOptions) (string, []any) {
	where, args := r.buildFilter(opt)
	parts := []string{where, " ORDER BY id"}

	if opt.Limit > 0 {
		parts = append(parts, " LIMIT ? OFFSET ?")
		args = append(args, opt.Limit, opt.Offset)
	}

	return strings.Join(parts, ""), args
}
