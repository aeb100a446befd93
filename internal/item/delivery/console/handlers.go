package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"inventory-service/internal/item"
)

type action struct {
	key   string
	title func(messages) string
	run   func(*Console, context.Context) error
}

var actions = []action{
	{"1", func(m messages) string { return m.menuAdd }, (*Console).add},
	{"2", func(m messages) string { return m.menuList }, (*Console).list},
	{"3", func(m messages) string { return m.menuDelete }, (*Console).delete},
	{"4", func(m messages) string { return m.menuUpdate }, (*Console).update},
	{"0", func(m messages) string { return m.menuExit }, nil},
}

// Run shows the menu until the operator chooses exit or the input ends.
// Only input and storage faults are returned.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, a := range actions {
			fmt.Fprintf(c.out, "%s. %s\n", a.key, a.title(c.msg))
		}

		choice, err := c.readLine(c.msg.choose)
		if err != nil {
			return ignoreEOF(err)
		}

		a, ok := lookup(choice)
		if !ok {
			c.println(c.msg.badChoice)
			continue
		}
		if a.run == nil {
			return nil
		}
		if err := a.run(c, ctx); err != nil {
			return ignoreEOF(err)
		}
	}
}

func lookup(key string) (action, bool) {
	for _, a := range actions {
		if a.key == key {
			return a, true
		}
	}
	return action{}, false
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (c *Console) add(ctx context.Context) error {
	id, err := c.readInt(c.msg.askID)
	if err != nil {
		return err
	}

	_, err = c.uc.Detail(ctx, id)
	switch {
	case err == nil:
		c.println(c.msg.exists)
		return nil
	case !errors.Is(err, item.ErrItemNotFound):
		return c.report(ctx, "console.add.Detail", err)
	}

	f, err := c.readFields(c.msg.askName, c.msg.askPrice, c.msg.askQuantity, c.msg.askYear)
	if err != nil {
		return err
	}

	_, err = c.uc.Create(ctx, item.CreateItemInput{
		ID:          &id,
		Name:        &f.name,
		Price:       &f.price,
		Quantity:    &f.quantity,
		ReleaseYear: &f.year,
	})
	if err != nil {
		return c.report(ctx, "console.add.Create", err)
	}
	c.println(c.msg.added)
	return nil
}

func (c *Console) list(ctx context.Context) error {
	out, err := c.uc.List(ctx, item.ListItemsInput{})
	if err != nil {
		return c.report(ctx, "console.list.List", err)
	}
	if len(out.Items) == 0 {
		c.println(c.msg.empty)
		return nil
	}
	for _, it := range out.Items {
		fmt.Fprintf(c.out, "%d %s %.2f %d %d\n", it.ID, it.Name, it.Price, it.Quantity, it.ReleaseYear)
	}
	return nil
}

func (c *Console) delete(ctx context.Context) error {
	id, err := c.readInt(c.msg.askDeleteID)
	if err != nil {
		return err
	}
	if err := c.uc.Delete(ctx, id); err != nil {
		return c.report(ctx, "console.delete.Delete", err)
	}
	c.println(c.msg.deleted)
	return nil
}

func (c *Console) update(ctx context.Context) error {
	id, err := c.readInt(c.msg.askUpdateID)
	if err != nil {
		return err
	}
	if _, err := c.uc.Detail(ctx, id); err != nil {
		return c.report(ctx, "console.update.Detail", err)
	}

	f, err := c.readFields(c.msg.askNewName, c.msg.askNewPrice, c.msg.askNewQty, c.msg.askNewYear)
	if err != nil {
		return err
	}

	_, err = c.uc.Update(ctx, item.UpdateItemInput{
		ID:          id,
		Name:        &f.name,
		Price:       &f.price,
		Quantity:    &f.quantity,
		ReleaseYear: &f.year,
	})
	if err != nil {
		return c.report(ctx, "console.update.Update", err)
	}
	c.println(c.msg.updated)
	return nil
}

// report prints domain errors and returns to the menu. Other errors are
// logged, printed and returned so the caller stops.
func (c *Console) report(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, item.ErrItemNotFound):
		c.println(c.msg.notFound)
		return nil
	case errors.Is(err, item.ErrItemExists):
		c.println(c.msg.exists)
		return nil
	case errors.Is(err, item.ErrInvalidInput), errors.Is(err, item.ErrMissingFields):
		c.println(fmt.Sprintf(c.msg.failed, err))
		return nil
	}
	c.l.Errorf(ctx, "%s: %v", op, err)
	c.println(fmt.Sprintf(c.msg.failed, err))
	return err
}
