package emitter

type Emitter1[T0 any] struct {
	e *Emitter
}

func NewEmitter1[T0 any]() *Emitter1[T0] {
	return &Emitter1[T0]{e: New()}
}

func (te *Emitter1[T0]) Subscribe(fn func(v0 T0) any) Token {
	return te.e.Subscribe(func(args ...any) any {
		return fn(args[0].(T0))
	})
}

func (te *Emitter1[T0]) Unsubscribe(tok Token) bool {
	return te.e.Unsubscribe(tok)
}

func (te *Emitter1[T0]) Emit(v0 T0) {
	te.e.Emit(v0)
}

func (te *Emitter1[T0]) EmitID() uint64 {
	return te.e.EmitID()
}

func (te *Emitter1[T0]) Size() int {
	return te.e.Size()
}

type Emitter2[T0, T1 any] struct {
	e *Emitter
}

func NewEmitter2[T0, T1 any]() *Emitter2[T0, T1] {
	return &Emitter2[T0, T1]{e: New()}
}

func (te *Emitter2[T0, T1]) Subscribe(fn func(v0 T0, v1 T1) any) Token {
	return te.e.Subscribe(func(args ...any) any {
		return fn(args[0].(T0), args[1].(T1))
	})
}

func (te *Emitter2[T0, T1]) Unsubscribe(tok Token) bool {
	return te.e.Unsubscribe(tok)
}

func (te *Emitter2[T0, T1]) Emit(v0 T0, v1 T1) {
	te.e.Emit(v0, v1)
}

func (te *Emitter2[T0, T1]) EmitID() uint64 {
	return te.e.EmitID()
}

func (te *Emitter2[T0, T1]) Size() int {
	return te.e.Size()
}

type Emitter3[T0, T1, T2 any] struct {
	e *Emitter
}

func NewEmitter3[T0, T1, T2 any]() *Emitter3[T0, T1, T2] {
	return &Emitter3[T0, T1, T2]{e: New()}
}

func (te *Emitter3[T0, T1, T2]) Subscribe(fn func(v0 T0, v1 T1, v2 T2) any) Token {
	return te.e.Subscribe(func(args ...any) any {
		return fn(args[0].(T0), args[1].(T1), args[2].(T2))
	})
}

func (te *Emitter3[T0, T1, T2]) Unsubscribe(tok Token) bool {
	return te.e.Unsubscribe(tok)
}

func (te *Emitter3[T0, T1, T2]) Emit(v0 T0, v1 T1, v2 T2) {
	te.e.Emit(v0, v1, v2)
}

func (te *Emitter3[T0, T1, T2]) EmitID() uint64 {
	return te.e.EmitID()
}

func (te *Emitter3[T0, T1, T2]) Size() int {
	return te.e.Size()
}

type Emitter4[T0, T1, T2, T3 any] struct {
	e *Emitter
}

func NewEmitter4[T0, T1, T2, T3 any]() *Emitter4[T0, T1, T2, T3] {
	return &Emitter4[T0, T1, T2, T3]{e: New()}
}

func (te *Emitter4[T0, T1, T2, T3]) Subscribe(fn func(v0 T0, v1 T1, v2 T2, v3 T3) any) Token {
	return te.e.Subscribe(func(args ...any) any {
		return fn(args[0].(T0), args[1].(T1), args[2].(T2), args[3].(T3))
	})
}

func (te *Emitter4[T0, T1, T2, T3]) Unsubscribe(tok Token) bool {
	return te.e.Unsubscribe(tok)
}

func (te *Emitter4[T0, T1, T2, T3]) Emit(v0 T0, v1 T1, v2 T2, v3 T3) {
	te.e.Emit(v0, v1, v2, v3)
}

func (te *Emitter4[T0, T1, T2, T3]) EmitID() uint64 {
	return te.e.EmitID()
}

func (te *Emitter4[T0, T1, T2, T3]) Size() int {
	return te.e.Size()
}

type Emitter5[T0, T1, T2, T3, T4 any] struct {
	e *Emitter
}

func NewEmitter5[T0, T1, T2, T3, T4 any]() *Emitter5[T0, T1, T2, T3, T4] {
	return &Emitter5[T0, T1, T2, T3, T4]{e: New()}
}

func (te *Emitter5[T0, T1, T2, T3, T4]) Subscribe(fn func(v0 T0, v1 T1, v2 T2, v3 T3, v4 T4) any) Token {
	return te.e.Subscribe(func(args ...any) any {
		return fn(args[0].(T0), args[1].(T1), args[2].(T2), args[3].(T3), args[4].(T4))
	})
}

func (te *Emitter5[T0, T1, T2, T3, T4]) Unsubscribe(tok Token) bool {
	return te.e.Unsubscribe(tok)
}

func (te *Emitter5[T0, T1, T2, T3, T4]) Emit(v0 T0, v1 T1, v2 T2, v3 T3, v4 T4) {
	te.e.Emit(v0, v1, v2, v3, v4)
}

func (te *Emitter5[T0, T1, T2, T3, T4]) EmitID() uint64 {
	return te.e.EmitID()
}

func (te *Emitter5[T0, T1, T2, T3, T4]) Size() int {
	return te.e.Size()
}

type Emitter6[T0, T1, T2, T3, T4, T5 any] struct {
	e *Emitter
}

func NewEmitter6[T0, T1, T2, T3, T4, T5 any]() *Emitter6[T0, T1, T2, T3, T4, T5] {
	return &Emitter6[T0, T1, T2, T3, T4, T5]{e: New()}
}

func (te *Emitter6[T0, T1, T2, T3, T4, T5]) Subscribe(fn func(v0 T0, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5) any) Token {
	return te.e.Subscribe(func(args ...any) any {
		return fn(args[0].(T0), args[1].(T1), args[2].(T2), args[3].(T3), args[4].(T4), args[5].(T5))
	})
}

func (te *Emitter6[T0, T1, T2, T3, T4, T5]) Unsubscribe(tok Token) bool {
	return te.e.Unsubscribe(tok)
}

func (te *Emitter6[T0, T1, T2, T3, T4, T5]) Emit(v0 T0, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5) {
	te.e.Emit(v0, v1, v2, v3, v4, v5)
}

func (te *Emitter6[T0, T1, T2, T3, T4, T5]) EmitID() uint64 {
	return te.e.EmitID()
}

func (te *Emitter6[T0, T1, T2, T3, T4, T5]) Size() int {
	return te.e.Size()
}

type Emitter7[T0, T1, T2, T3, T4, T5, T6 any] struct {
	e *Emitter
}

func NewEmitter7[T0, T1, T2, T3, T4, T5, T6 any]() *Emitter7[T0, T1, T2, T3, T4, T5, T6] {
	return &Emitter7[T0, T1, T2, T3, T4, T5, T6]{e: New()}
}

func (te *Emitter7[T0, T1, T2, T3, T4, T5, T6]) Subscribe(fn func(v0 T0, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6) any) Token {
	return te.e.Subscribe(func(args ...any) any {
		return fn(args[0].(T0), args[1].(T1), args[2].(T2), args[3].(T3), args[4].(T4), args[5].(T5), args[6].(T6))
	})
}

func (te *Emitter7[T0, T1, T2, T3, T4, T5, T6]) Unsubscribe(tok Token) bool {
	return te.e.Unsubscribe(tok)
}

func (te *Emitter7[T0, T1, T2, T3, T4, T5, T6]) Emit(v0 T0, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6) {
	te.e.Emit(v0, v1, v2, v3, v4, v5, v6)
}

func (te *Emitter7[T0, T1, T2, T3, T4, T5, T6]) EmitID() uint64 {
	return te.e.EmitID()
}

func (te *Emitter7[T0, T1, T2, T3, T4, T5, T6]) Size() int {
	return te.e.Size()
}

type Emitter8[T0, T1, T2, T3, T4, T5, T6, T7 any] struct {
	e *Emitter
}

func NewEmitter8[T0, T1, T2, T3, T4, T5, T6, T7 any]() *Emitter8[T0, T1, T2, T3, T4, T5, T6, T7] {
	return &Emitter8[T0, T1, T2, T3, T4, T5, T6, T7]{e: New()}
}

func (te *Emitter8[T0, T1, T2, T3, T4, T5, T6, T7]) Subscribe(fn func(v0 T0, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6, v7 T7) any) Token {
	return te.e.Subscribe(func(args ...any) any {
		return fn(args[0].(T0), args[1].(T1), args[2].(T2), args[3].(T3), args[4].(T4), args[5].(T5), args[6].(T6), args[7].(T7))
	})
}

func (te *Emitter8[T0, T1, T2, T3, T4, T5, T6, T7]) Unsubscribe(tok Token) bool {
	return te.e.Unsubscribe(tok)
}

func (te *Emitter8[T0, T1, T2, T3, T4, T5, T6, T7]) Emit(v0 T0, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6, v7 T7) {
	te.e.Emit(v0, v1, v2, v3, v4, v5, v6, v7)
}

func (te *Emitter8[T0, T1, T2, T3, T4, T5, T6, T7]) EmitID() uint64 {
	return te.e.EmitID()
}

func (te *Emitter8[T0, T1, T2, T3, T4, T5, T6, T7]) Size() int {
	return te.e.Size()
}
