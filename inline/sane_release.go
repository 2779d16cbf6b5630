//go:build !inlinedebug

package inline

func (s String) assertSane() {}
