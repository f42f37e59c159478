package morton_test

import (
	"fmt"

	"github.com/hadeaninc/libzinc/morton"
)

// Example_unifyingLevelAndParentAligned demonstrates the S9 scenario
// table: get_unifying_level(127, 128) == 4, get_max_align_level(4) == 1,
// parent_aligned(254, 3) == 192.
func Example_unifyingLevelAndParentAligned() {
	fmt.Println(morton.UnifyingLevel2(127, 128))
	fmt.Println(morton.Code2(4).MaxAlignLevel())
	fmt.Println(morton.Code2(254).ParentAligned(3))
	// Output:
	// 4
	// 1
	// 192
}
