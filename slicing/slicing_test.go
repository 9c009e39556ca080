package slicing

import (
	"errors"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func some(n int) mo.Option[int] { return mo.Some(n) }
func none() mo.Option[int]      { return mo.None[int]() }

func TestApply(t *testing.T) {
	Convey("Apply", t, func() {
		items := []int{0, 1, 2, 3, 4}

		Convey("Upto takes a prefix", func() {
			So(must(Apply(items, Upto(3))), ShouldResemble, []int{0, 1, 2})
		})

		Convey("Upto with a negative index drops from the end", func() {
			So(must(Apply(items, Upto(-1))), ShouldResemble, []int{0, 1, 2, 3})
		})

		Convey("Upto beyond the length is clamped", func() {
			So(must(Apply(items, Upto(100))), ShouldResemble, items)
			So(must(Apply(items, Upto(-100))), ShouldResemble, []int{})
		})

		Convey("Between selects a half-open range", func() {
			So(must(Apply(items, Between(1, 3))), ShouldResemble, []int{1, 2})
		})

		Convey("Full copies everything", func() {
			got := must(Apply(items, Full()))
			So(got, ShouldResemble, items)

			got[0] = 42
			So(items[0], ShouldEqual, 0)
		})

		Convey("Positive step skips elements", func() {
			So(must(Apply(items, Range(none(), none(), some(2)))), ShouldResemble, []int{0, 2, 4})
			So(must(Apply(items, Range(some(1), none(), some(2)))), ShouldResemble, []int{1, 3})
		})

		Convey("Negative step walks backwards", func() {
			So(must(Apply(items, Range(none(), none(), some(-1)))), ShouldResemble, []int{4, 3, 2, 1, 0})
			So(must(Apply(items, Range(some(3), some(0), some(-1)))), ShouldResemble, []int{3, 2, 1})
			So(must(Apply(items, Range(some(-1), some(-4), some(-2)))), ShouldResemble, []int{4, 2})
		})

		Convey("Negative start and stop count from the end", func() {
			So(must(Apply(items, Between(-3, -1))), ShouldResemble, []int{2, 3})
		})

		Convey("Out-of-range bounds are clamped", func() {
			So(must(Apply(items, Between(-100, 100))), ShouldResemble, items)
			So(must(Apply(items, Between(4, 1))), ShouldResemble, []int{})
			So(must(Apply(items, Range(some(100), some(-100), some(-1)))), ShouldResemble, []int{4, 3, 2, 1, 0})
		})

		Convey("Zero step fails", func() {
			_, err := Apply(items, Range(none(), none(), some(0)))
			So(errors.Is(err, ErrZeroStep), ShouldBeTrue)
		})

		Convey("Empty input yields an empty slice", func() {
			So(must(Apply([]int{}, Full())), ShouldResemble, []int{})
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Single integer is Upto", func() {
			b, err := Parse("3")
			So(err, ShouldBeNil)
			So(b.Kind(), ShouldEqual, KindUpto)
			So(b.String(), ShouldEqual, ":3")
		})

		Convey("Colon prefix is Upto", func() {
			b, err := Parse(":-1")
			So(err, ShouldBeNil)
			So(b.Kind(), ShouldEqual, KindUpto)
			So(b.String(), ShouldEqual, ":-1")
		})

		Convey("Ranges keep every part", func() {
			for _, s := range []string{"1:3", "::-1", "1::2", "1:", ":"} {
				b, err := Parse(s)
				So(err, ShouldBeNil)
				So(b.Kind(), ShouldEqual, KindRange)
				So(b.String(), ShouldEqual, s)
			}
		})

		Convey("Malformed bounds fail", func() {
			for _, s := range []string{"", "a", "1:b", "1:2:3:4"} {
				_, err := Parse(s)
				So(errors.Is(err, ErrSyntax), ShouldBeTrue)
			}
		})
	})
}

// must drops the error of a successful Apply.
func must(items []int, err error) []int {
	So(err, ShouldBeNil)
	return items
}
