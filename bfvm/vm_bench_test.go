package bfvm

import "testing"

func BenchmarkVM_HelloWorld(b *testing.B) {
	code := Parse(helloWorld)
	for b.Loop() {
		vm, err := NewVM(code, nil)
		if err != nil {
			b.Fatal(err)
		}
		for _, err := range vm.Run {
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkVM_Countdown(b *testing.B) {
	// 255 * 255 inner iterations
	vm, err := Load("-[>-[-]<-]", nil)
	if err != nil {
		b.Fatal(err)
	}
	code, jumps := vm.Code, vm.Jumps
	for b.Loop() {
		vm := &VM{
			Code:    code,
			Jumps:   jumps,
			Context: NewContext(nil),
		}
		for _, err := range vm.Run {
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkMakeJumpTable(b *testing.B) {
	code := Parse(helloWorld)
	for b.Loop() {
		if _, err := MakeJumpTable(code); err != nil {
			b.Fatal(err)
		}
	}
}
