package console

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"inventory-service/internal/item"
	"inventory-service/internal/item/usecase"
)

// readLine prints prompt and returns the next trimmed input line.
// It returns io.EOF once the input is exhausted.
func (c *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) readInt(prompt string) (int64, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseInt(line, 10, 64)
		if err == nil {
			return v, nil
		}
		c.println(c.msg.notInt)
	}
}

func (c *Console) readQuantity(prompt string) (int64, error) {
	for {
		v, err := c.readInt(prompt)
		if err != nil {
			return 0, err
		}
		if v >= 0 {
			return v, nil
		}
		c.println(c.msg.negative)
	}
}

func (c *Console) readPrice(prompt string) (float64, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			c.println(c.msg.notNumber)
			continue
		}
		if v < 0 {
			c.println(c.msg.negative)
			continue
		}
		return v, nil
	}
}

func (c *Console) readYear(prompt string) (int, error) {
	current := c.now().Year()
	for {
		v, err := c.readInt(prompt)
		if err != nil {
			return 0, err
		}
		if v >= math.MinInt32 && v <= math.MaxInt32 {
			if usecase.ValidateReleaseYear(int(v), current) == nil {
				return int(v), nil
			}
		}
		c.println(fmt.Sprintf(c.msg.badYear, item.MinReleaseYear, current))
	}
}

func (c *Console) readName(prompt string) (string, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		c.println(c.msg.blankName)
	}
}

// itemFields collects name, price, quantity and release year.
type itemFields struct {
	name     string
	price    float64
	quantity int64
	year     int
}

func (c *Console) readFields(name, price, quantity, year string) (itemFields, error) {
	var (
		f   itemFields
		err error
	)
	if f.name, err = c.readName(name); err != nil {
		return f, err
	}
	if f.price, err = c.readPrice(price); err != nil {
		return f, err
	}
	if f.quantity, err = c.readQuantity(quantity); err != nil {
		return f, err
	}
	if f.year, err = c.readYear(year); err != nil {
		return f, err
	}
	return f, nil
}
