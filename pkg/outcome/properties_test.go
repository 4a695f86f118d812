package outcome

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/Philanthropists/gamesdk-outcome/pkg/sdkerror"
)

func genErrorType() gopter.Gen {
	return gen.IntRange(int(sdkerror.AlreadyInitialized), int(sdkerror.Canceled)).
		Map(func(v int) sdkerror.ErrorType { return sdkerror.ErrorType(v) })
}

func genError() gopter.Gen {
	return gopter.CombineGens(genErrorType(), gen.AnyString()).
		Map(func(vs []any) *sdkerror.Error {
			return sdkerror.Newf(vs[0].(sdkerror.ErrorType), "%s", vs[1].(string))
		})
}

func newProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	return gopter.NewProperties(parameters)
}

func TestLongOutcomeProperties(t *testing.T) {
	properties := newProperties()

	properties.Property("success carries its value", prop.ForAll(
		func(v int64) bool {
			o := Success(v)
			got, err := o.Value()
			return o.IsSuccess() && err == nil && got == v && o.Err() == nil
		},
		gen.Int64(),
	))

	properties.Property("failure carries its error", prop.ForAll(
		func(e *sdkerror.Error) bool {
			o := Failure[int64](e)
			return !o.IsSuccess() && o.Err() == e
		},
		genError(),
	))

	properties.Property("failure with default carries both", prop.ForAll(
		func(e *sdkerror.Error, v int64) bool {
			o := FailureWithDefault(e, v)
			got, err := o.Value()
			return !o.IsSuccess() && o.Err() == e && err == nil && got == v
		},
		genError(),
		gen.Int64(),
	))

	properties.Property("value of plain failure is invalid access", prop.ForAll(
		func(e *sdkerror.Error) bool {
			_, err := Failure[int64](e).Value()
			return err != nil && ErrInvalidAccess.Has(err)
		},
		genError(),
	))

	properties.Property("reads never change classification", prop.ForAll(
		func(e *sdkerror.Error, v int64, fail, partial bool) bool {
			var o Long
			switch {
			case !fail:
				o = Success(v)
			case partial:
				o = FailureWithDefault(e, v)
			default:
				o = Failure[int64](e)
			}

			before := o.IsSuccess()
			_, _ = o.Value()
			_ = o.ValueOr(0)
			_, _ = o.Get()
			_ = o.Err()
			_ = o.String()
			_ = Map(o, func(v int64) int64 { return v + 1 })

			return o.IsSuccess() == before && before == !fail
		},
		genError(),
		gen.Int64(),
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
