package graph

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tone int

const (
	toneLoud tone = iota
	toneSoft
)

func (t tone) String() string {
	if t == toneLoud {
		return "LOUD"
	}
	return "SOFT"
}

type track struct {
	Title string
	Tone  tone
	Tones []tone
	ID    uuid.UUID
	At    time.Time

	plays int
}

func (t *track) Plays() int { return t.plays }

func TestPropertyResolver(t *testing.T) {
	ctx := context.Background()
	resolve := PropertyResolver("track_title", "Title")

	// Keyed records read by wire name.
	v, err := resolve(ctx, map[string]any{"track_title": "Intro"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Intro", v)

	// Typed instances read by property name.
	v, err = resolve(ctx, &track{Title: "Outro"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Outro", v)

	// A zero-argument method of the property name serves as a getter.
	v, err = PropertyResolver("plays", "Plays")(ctx, &track{plays: 7}, nil)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	// Missing keys and nil sources read as null.
	v, err = resolve(ctx, map[string]any{}, nil)
	require.NoError(t, err)
	assert.Nil(t, v)
	v, err = resolve(ctx, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestTimeResolver(t *testing.T) {
	ctx := context.Background()
	resolve := TimeResolver("created_at", "At")
	at := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

	// The record branch parses the stored string form.
	v, err := resolve(ctx, map[string]any{"created_at": "2024-05-01T12:30:00Z"}, nil)
	require.NoError(t, err)
	assert.Equal(t, at, v.(time.Time).UTC())

	// Already-typed values and nulls pass through.
	v, err = resolve(ctx, map[string]any{"created_at": at}, nil)
	require.NoError(t, err)
	assert.Equal(t, at, v)
	v, err = resolve(ctx, map[string]any{"created_at": nil}, nil)
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = resolve(ctx, map[string]any{"created_at": "yesterday"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "created_at")

	v, err = resolve(ctx, &track{At: at}, nil)
	require.NoError(t, err)
	assert.Equal(t, at, v)
}

func TestIDResolver(t *testing.T) {
	ctx := context.Background()
	resolve := IDResolver("id", "ID")
	id := uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e")

	// The record branch coerces to the canonical string form.
	v, err := resolve(ctx, map[string]any{"id": id.String()}, nil)
	require.NoError(t, err)
	assert.Equal(t, id.String(), v)
	v, err = resolve(ctx, map[string]any{"id": int64(42)}, nil)
	require.NoError(t, err)
	assert.Equal(t, "42", v)
	v, err = resolve(ctx, map[string]any{"id": nil}, nil)
	require.NoError(t, err)
	assert.Nil(t, v)

	// The instance branch projects uuid values to strings.
	v, err = resolve(ctx, &track{ID: id}, nil)
	require.NoError(t, err)
	assert.Equal(t, id.String(), v)
}

func TestEnumResolver(t *testing.T) {
	ctx := context.Background()
	EnumType("Tone2",
		&EnumValueDescriptor{Name: "LOUD", Value: toneLoud},
		&EnumValueDescriptor{Name: "SOFT", Value: toneSoft},
	)

	// The lenient form returns the stored wire string unchanged.
	lenient := EnumResolver("tone", "Tone", "Tone2", false)
	v, err := lenient(ctx, map[string]any{"tone": "SOFT"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "SOFT", v)

	// The typed form revives the matching constant.
	typed := EnumResolver("tone", "Tone", "Tone2", true)
	v, err = typed(ctx, map[string]any{"tone": "SOFT"}, nil)
	require.NoError(t, err)
	assert.Equal(t, toneSoft, v)

	_, err = typed(ctx, map[string]any{"tone": "MEDIUM"}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEnumValue)
	assert.True(t, IsInvalidEnumValueError(err))

	v, err = typed(ctx, map[string]any{"tone": nil}, nil)
	require.NoError(t, err)
	assert.Nil(t, v)

	// The instance branch always projects to the wire string.
	v, err = typed(ctx, &track{Tone: toneSoft}, nil)
	require.NoError(t, err)
	assert.Equal(t, "SOFT", v)
}

func TestEnumListResolver(t *testing.T) {
	ctx := context.Background()
	resolve := EnumListResolver("tones", "Tones")

	v, err := resolve(ctx, map[string]any{"tones": []any{"LOUD", "SOFT"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, []any{"LOUD", "SOFT"}, v)

	v, err = resolve(ctx, &track{Tones: []tone{toneLoud, toneSoft}}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"LOUD", "SOFT"}, v)

	// A null list stays null rather than becoming an empty one.
	v, err = resolve(ctx, &track{}, nil)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestMethodResolver(t *testing.T) {
	ctx := context.Background()
	Resolvers.Register("Track.related", func(_ context.Context, source any, args map[string]any) (any, error) {
		return []any{source.(*track).Title, args["limit"]}, nil
	})

	v, err := MethodResolver("Track.related")(ctx, &track{Title: "Intro"}, map[string]any{"limit": 2})
	require.NoError(t, err)
	assert.Equal(t, []any{"Intro", 2}, v)

	_, err = MethodResolver("Track.unknown")(ctx, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingResolver)
}
