// Package fuzztests houses Go fuzz harnesses for the pre-lexer. Its goal is
// to catch panics, lost bytes and broken partitions on arbitrary input.
//
// Назначение: прогонять произвольные байты через prelex.Process и проверять,
// что токены и пробелы между ними покрывают вход ровно один раз.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/prelex, internal/value, internal/source.

package fuzztests
