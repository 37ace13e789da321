// Package toolchain is the hand-off point between planning and the build
// toolchain. Plans are passed to an Invoker; nothing flows back.
package toolchain
