package slicex

import (
	"reflect"
	"strconv"
	"sync"
	"testing"

	"github.com/flachnetz/slicemap/lib"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type account struct {
	id    int
	level string
}

func square(value int) int {
	return value * value
}

func TestMap(t *testing.T) {
	type args struct {
		input  []int
		mapper func(int) string
	}
	tests := []struct {
		name string
		args args
		want []string
	}{
		{
			name: "format numbers",
			args: args{
				input:  []int{1, 2, 3},
				mapper: strconv.Itoa,
			},
			want: []string{"1", "2", "3"},
		},
		{
			name: "empty input",
			args: args{
				input:  []int{},
				mapper: strconv.Itoa,
			},
			want: []string{},
		},
		{
			name: "nil input",
			args: args{
				input:  nil,
				mapper: strconv.Itoa,
			},
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Map(tt.args.input, tt.args.mapper); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Map() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMapKeepsOrder(t *testing.T) {
	require.Equal(t, []int{1, 4, 9}, Map([]int{1, 2, 3}, square))
}

func TestMapCallsOncePerItemInOrder(t *testing.T) {
	var seen []int

	result := Map([]int{5, 6, 7, 8}, func(value int) int {
		seen = append(seen, value)
		return value
	})

	require.Equal(t, []int{5, 6, 7, 8}, seen)
	require.Len(t, result, 4)
}

func TestMapEmptyDoesNotCallMapper(t *testing.T) {
	called := false

	result := Map([]int{}, func(value int) int {
		called = true
		return value
	})

	require.False(t, called)
	require.NotNil(t, result)
	require.Empty(t, result)
}

func TestMapIdentityCopies(t *testing.T) {
	input := []int{1, 2, 3}

	result := Map(input, lib.Identity[int])
	require.Equal(t, input, result)

	result[0] = 100
	require.Equal(t, []int{1, 2, 3}, input)
}

func TestMapDoesNotModifyInput(t *testing.T) {
	input := []account{{id: 1, level: "user"}}

	result := Map(input, func(acc account) account {
		acc.level = "admin"
		return acc
	})

	require.Equal(t, []account{{id: 1, level: "admin"}}, result)
	require.Equal(t, []account{{id: 1, level: "user"}}, input)
}

func TestMapNilMapper(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("expected panic with ErrInvalidArgument, got %v", err)
		}
	}()

	Map[int, int]([]int{}, nil)
	t.Fatal("Map did not panic")
}

func TestMapMapperPanicPropagates(t *testing.T) {
	require.PanicsWithValue(t, "boom", func() {
		Map([]int{1, 2}, func(value int) int {
			if value == 2 {
				panic("boom")
			}
			return value
		})
	})
}

func TestMapErr(t *testing.T) {
	result, err := MapErr([]string{"1", "2", "3"}, strconv.Atoi)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, result)
}

func TestMapErrEmpty(t *testing.T) {
	result, err := MapErr([]string{}, func(string) (int, error) {
		t.Fatal("mapper must not be called")
		return 0, nil
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	require.Empty(t, result)
}

func TestMapErrStopsAtFirstFailure(t *testing.T) {
	errFailed := errors.New("second element failed")

	var calls []int
	result, err := MapErr([]int{1, 2, 3}, func(value int) (int, error) {
		calls = append(calls, value)
		if value == 2 {
			return 0, errFailed
		}
		return square(value), nil
	})

	require.Nil(t, result)
	require.Equal(t, []int{1, 2}, calls)

	require.ErrorIs(t, err, ErrTransformFailure)
	require.ErrorIs(t, err, errFailed)
	require.Same(t, errFailed, errors.Cause(err))

	var transformErr *TransformError
	require.ErrorAs(t, err, &transformErr)
	require.Equal(t, 1, transformErr.Index)
	require.EqualError(t, err, "transform element 1: second element failed")
}

func TestMapErrNilMapper(t *testing.T) {
	result, err := MapErr[int, int]([]int{1}, nil)
	require.Nil(t, result)
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.NotErrorIs(t, err, ErrTransformFailure)
}

func TestMapConcurrentCalls(t *testing.T) {
	input := []int{1, 2, 3, 4}

	results := make([][]int, 8)

	var wg sync.WaitGroup
	for idx := range results {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = Map(input, func(value int) int { return value * idx })
		}(idx)
	}

	wg.Wait()

	for idx, result := range results {
		require.Equal(t, []int{idx, 2 * idx, 3 * idx, 4 * idx}, result)

		// results of the other calls must not see this write
		result[0] = -1
	}

	require.Equal(t, []int{1, 2, 3, 4}, input)
}
