package main

import "strings"

// exitError 表示需要非零退出码但已完成输出的场景。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// usageError 命令参数不符合用法。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func newUsageError(msg string) error {
	return &usageError{msg: msg}
}

// cliUsageMessages urfave/cli 参数错误的消息片段。
var cliUsageMessages = []string{
	"flag provided but not defined",
	"flag needs an argument",
	"invalid value",
	"No help topic for",
	"Required flag",
}

// isCLIUsageError 判断是否为 CLI 框架产生的参数错误。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	for _, s := range cliUsageMessages {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
