package reqparse

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type deviceQuery struct {
	Keys     []string  `arg:"device_key"`
	Platform string    `arg:"platform"`
	Limit    int64     `arg:"limit"`
	Ratio    float32   `arg:"ratio"`
	ID       uuid.UUID `arg:"id"`
	Raw      any       `arg:"raw"`
	Ignored  string    `arg:"-"`
	Untagged string
}

func TestNamespaceDecode(t *testing.T) {
	id := uuid.New()
	p := MustRequestParser(
		Argument{Name: "device_key", Action: Append},
		Argument{Name: "platform"},
		Argument{Name: "limit", Type: Int, Default: 5},
		Argument{Name: "ratio", Type: Float},
		Argument{Name: "id", Type: UUID},
		Argument{Name: "raw", Type: Bool},
	)

	t.Run("Success", func(t *testing.T) {
		ns, err := p.Parse(Values{
			"device_key": {"k1", "k2"},
			"ratio":      {"0.5"},
			"id":         {id.String()},
			"raw":        {"yes"},
			"Untagged":   {"x"},
		}, false)
		require.NoError(t, err)

		q := deviceQuery{Platform: "kept", Ignored: "kept"}
		require.NoError(t, ns.Decode(&q))

		assert.Equal(t, []string{"k1", "k2"}, q.Keys)
		assert.Equal(t, "kept", q.Platform)
		assert.Equal(t, int64(5), q.Limit)
		assert.Equal(t, float32(0.5), q.Ratio)
		assert.Equal(t, id, q.ID)
		assert.Equal(t, true, q.Raw)
		assert.Equal(t, "kept", q.Ignored)
		assert.Empty(t, q.Untagged)
	})

	t.Run("TypeMismatch", func(t *testing.T) {
		ns := newNamespace(0)
		ns.set("platform", 3)

		var q deviceQuery
		err := ns.Decode(&q)
		assert.ErrorIs(t, err, ErrDecodeTypeMismatch)
		assert.Contains(t, err.Error(), "platform")
	})

	t.Run("NoRuneConversion", func(t *testing.T) {
		ns := newNamespace(0)
		ns.set("device_key", []any{65})

		var q deviceQuery
		assert.ErrorIs(t, ns.Decode(&q), ErrDecodeTypeMismatch)
	})

	t.Run("InvalidTarget", func(t *testing.T) {
		ns := newNamespace(0)
		var q deviceQuery
		assert.ErrorIs(t, ns.Decode(q), ErrInvalidDecodeTarget)
		assert.ErrorIs(t, ns.Decode((*deviceQuery)(nil)), ErrInvalidDecodeTarget)
		s := "x"
		assert.ErrorIs(t, ns.Decode(&s), ErrInvalidDecodeTarget)
	})
}
