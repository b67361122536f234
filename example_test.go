package encoding

import "fmt"

func Example() {
	inputs := []string{"hello world", "一"}
	for _, input := range inputs {
		enc, err := ShiftJIS.Encode(input, EncoderTrapStrict{})
		if err != nil {
			fmt.Println(err)
			continue
		}
		dec, err := ShiftJIS.Decode(enc, DecoderTrapStrict{})
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(dec)
	}
	// Output:
	// hello world
	// 一
}
