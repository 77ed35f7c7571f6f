package log

import (
	// Stdlib
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	// Vendor
	"github.com/fatih/color"
	"github.com/shiena/ansicolor"
)

type (
	Level  uint32
	Logger bool
)

const (
	Trace Level = iota
	Debug
	Verbose
	Info
	Off
)

var levelStrings = map[Level]string{
	Trace:   "trace",
	Debug:   "debug",
	Verbose: "verbose",
	Info:    "info",
	Off:     "off",
}

func LevelStrings() []string {
	return []string{"trace", "debug", "verbose", "info", "off"}
}

func LevelToString(level Level) (string, bool) {
	str, ok := levelStrings[level]
	return str, ok
}

func MustLevelToString(level Level) string {
	str, ok := LevelToString(level)
	if !ok {
		panic(fmt.Sprintf("unknown log level: %v", level))
	}
	return str
}

func StringToLevel(levelString string) (Level, bool) {
	for level, str := range levelStrings {
		if str == levelString {
			return level, true
		}
	}
	return 0, false
}

func MustStringToLevel(levelString string) Level {
	level, ok := StringToLevel(levelString)
	if !ok {
		panic("unknown log level string: " + levelString)
	}
	return level
}

var (
	v      = Info
	mu     sync.Mutex
	output io.Writer = ansicolor.NewAnsiColorWriter(os.Stderr)
)

func SetV(level Level) {
	atomic.StoreUint32((*uint32)(&v), uint32(level))
}

// SetOutput redirects all logging. It returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := output
	output = w
	return prev
}

func V(level Level) Logger {
	if atomic.LoadUint32((*uint32)(&v)) > uint32(level) {
		return Logger(false)
	}
	return Logger(true)
}

// Lock and Unlock can be used to print multiple lines without interleaving.
// Only the Unsafe* methods can be used while the lock is being held.
func (l Logger) Lock() {
	mu.Lock()
}

func (l Logger) Unlock() {
	mu.Unlock()
}

func (l Logger) UnsafeLog(msg string) {
	l.unsafePrintf("[LOG]      %v\n", msg)
}

func (l Logger) UnsafeRun(msg string) {
	l.unsafePrintf("[RUN]      %v\n", msg)
}

func (l Logger) UnsafeSkip(msg string) {
	l.unsafePrintf("[SKIP]     %v\n", msg)
}

func (l Logger) UnsafeOk(msg string) {
	l.unsafePrintf("[OK]       %v\n", msg)
}

func (l Logger) UnsafeWarn(msg string) {
	l.UnsafePrint(color.YellowString("[WARNING]  %v\n", msg))
}

func (l Logger) UnsafeFail(msg string) {
	l.UnsafePrint(color.RedString("[FAIL]     %v\n", msg))
}

func (l Logger) UnsafeRollback(msg string) {
	l.unsafePrintf("[ROLLBACK] %v\n", msg)
}

func (l Logger) UnsafeNewLine(msg string) {
	l.unsafePrintf("           %v\n", msg)
}

// UnsafeStderr prints the given stderr, clearly delimited.
func (l Logger) UnsafeStderr(stderr *bytes.Buffer) {
	if stderr == nil || stderr.Len() == 0 {
		return
	}
	l.unsafePrintf("<<<<< stderr\n")
	l.unsafePrintf("%v", stderr)
	if !bytes.HasSuffix(stderr.Bytes(), []byte{'\n'}) {
		l.unsafePrintf("\n")
	}
	l.unsafePrintf(">>>>> stderr\n")
}

func (l Logger) UnsafePrint(v ...interface{}) {
	if l {
		fmt.Fprint(output, v...)
	}
}

func (l Logger) unsafePrintf(format string, v ...interface{}) {
	if l {
		fmt.Fprintf(output, format, v...)
	}
}

func (l Logger) Log(msg string) {
	l.Lock()
	defer l.Unlock()
	l.UnsafeLog(msg)
}

func (l Logger) Run(msg string) {
	l.Lock()
	defer l.Unlock()
	l.UnsafeRun(msg)
}

func (l Logger) Skip(msg string) {
	l.Lock()
	defer l.Unlock()
	l.UnsafeSkip(msg)
}

func (l Logger) Ok(msg string) {
	l.Lock()
	defer l.Unlock()
	l.UnsafeOk(msg)
}

func (l Logger) Warn(msg string) {
	l.Lock()
	defer l.Unlock()
	l.UnsafeWarn(msg)
}

func (l Logger) Fail(msg string) {
	l.Lock()
	defer l.Unlock()
	l.UnsafeFail(msg)
}

func (l Logger) Rollback(msg string) {
	l.Lock()
	defer l.Unlock()
	l.UnsafeRollback(msg)
}

func Log(msg string) {
	V(Info).Log(msg)
}

func Run(msg string) {
	V(Info).Run(msg)
}

func Skip(msg string) {
	V(Info).Skip(msg)
}

func Ok(msg string) {
	V(Info).Ok(msg)
}

func Warn(msg string) {
	V(Info).Warn(msg)
}

func Fail(msg string) {
	V(Info).Fail(msg)
}

func Rollback(msg string) {
	V(Info).Rollback(msg)
}

func Fatalln(v ...interface{}) {
	mu.Lock()
	fmt.Fprintln(output, v...)
	mu.Unlock()
	os.Exit(1)
}
