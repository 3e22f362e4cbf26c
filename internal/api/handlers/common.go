package handlers

import (
	"encoding/json"
	"github.com/gofiber/fiber/v2"
	"recipehub/domain"
	"recipehub/internal/api/presenters"
	"sort"
	"strconv"
	"strings"
)

// viewerID is empty for anonymous requests.
func viewerID(c *fiber.Ctx) string {
	id, _ := c.Locals(domain.LocalsUserID).(string)
	return id
}

func failure(c *fiber.Ctx, message string, err error) error {
	return presenters.ErrorResponse(c, presenters.StatusCode(err), presenters.Message(err, message), err)
}

func pageParams(c *fiber.Ctx) (int, int) {
	return c.QueryInt("page", 1), c.QueryInt("limit", domain.DefaultPageSize)
}

// splitList accepts "a,b" as well as repeated query values.
func splitList(values ...string) []string {
	var out []string
	for _, raw := range values {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func queryValues(c *fiber.Ctx, key string) []string {
	raw := c.Context().QueryArgs().PeekMulti(key)
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		values = append(values, string(v))
	}
	return values
}

// indexedFormValues collects name[0], name[1], ... in index order.
func indexedFormValues(form map[string][]string, name string) []string {
	prefix := name + "["
	type entry struct {
		index int
		value string
	}
	var entries []entry
	for key, values := range form {
		if !strings.HasPrefix(key, prefix) || !strings.HasSuffix(key, "]") || len(values) == 0 {
			continue
		}
		index, err := strconv.Atoi(key[len(prefix) : len(key)-1])
		if err != nil || index < 0 {
			continue
		}
		entries = append(entries, entry{index: index, value: values[0]})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].index < entries[j].index })

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.value)
	}
	return out
}

// expandFormList turns a single JSON array form value into its items.
// Repeated form fields are returned unchanged.
func expandFormList(values []string) []string {
	if len(values) != 1 {
		return values
	}
	raw := strings.TrimSpace(values[0])
	if !strings.HasPrefix(raw, "[") {
		return values
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return values
	}
	return items
}
