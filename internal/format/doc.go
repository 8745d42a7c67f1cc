// Package format renders scan results.
//
// Назначение: человекочитаемый вывод (pretty) и машинный (json, jsonl).
// Не делает: сканирования и IO кроме записи в переданный io.Writer.
// Зависимости: internal/prelex, internal/source, internal/value.
package format
