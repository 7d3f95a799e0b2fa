package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
	"github.com/topfreegames/pitaya/v3/pkg/logger/interfaces"
	logruswrapper "github.com/topfreegames/pitaya/v3/pkg/logger/logrus"
)

const (
	logMaxAge   = 7 * 24 * time.Hour
	logRotation = 24 * time.Hour
)

// Formatter 单行格式: 时间 [级别] 文件:行 函数 消息 k=v...
type Formatter struct{}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(entry.Time.Format(time.DateTime))
	sb.WriteString(" [")
	sb.WriteString(strings.ToLower(entry.Level.String()))
	sb.WriteString("] ")
	if entry.HasCaller() {
		fileName := filepath.Base(entry.Caller.File)
		funcName := entry.Caller.Function
		if i := strings.LastIndex(funcName, "."); i >= 0 {
			funcName = funcName[i+1:]
		}
		fmt.Fprintf(&sb, "%s:%d %s ", fileName, entry.Caller.Line, funcName)
	}
	sb.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%v", k, entry.Data[k])
	}
	sb.WriteByte('\n')
	return []byte(sb.String()), nil
}

// ParseLevel 无法识别时退回 info
func ParseLevel(level string) logrus.Level {
	lv, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lv
}

// Logger 构造 pitaya 日志. dir 为空时输出到 stderr, 否则按天轮转写文件
func Logger(level logrus.Level, dir string) (interfaces.Logger, error) {
	l := logrus.New()
	var out io.Writer = os.Stderr
	if dir != "" {
		writer, err := NewRotateWriter(dir)
		if err != nil {
			return nil, err
		}
		out = writer
	}
	l.SetOutput(out)
	l.SetReportCaller(true)
	l.Formatter = &Formatter{}
	l.SetLevel(level)
	return logruswrapper.NewWithFieldLogger(l), nil
}

// NewRotateWriter 在 dir 下创建 <程序名>-YYYYMMDD.log
func NewRotateWriter(dir string) (*SafeRotateLogs, error) {
	programName := filepath.Base(os.Args[0])
	logFile := filepath.Join(dir, fmt.Sprintf("%s-%%Y%%m%%d.log", programName))
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	writer, err := newRotateLogs(logFile)
	if err != nil {
		return nil, err
	}
	return &SafeRotateLogs{
		RotateLogs: writer,
		logPattern: logFile,
	}, nil
}

func newRotateLogs(pattern string) (*rotatelogs.RotateLogs, error) {
	return rotatelogs.New(
		pattern,
		rotatelogs.WithMaxAge(logMaxAge),
		rotatelogs.WithRotationTime(logRotation),
	)
}

// SafeRotateLogs 日志文件被删除后重新创建
type SafeRotateLogs struct {
	*rotatelogs.RotateLogs
	logPattern string
}

func (s *SafeRotateLogs) Write(p []byte) (n int, err error) {
	if current := s.RotateLogs.CurrentFileName(); current != "" {
		if _, err := os.Stat(current); os.IsNotExist(err) {
			writer, err := newRotateLogs(s.logPattern)
			if err != nil {
				return 0, fmt.Errorf("recreate log writer: %w", err)
			}
			s.RotateLogs = writer
		}
	}
	return s.RotateLogs.Write(p)
}
