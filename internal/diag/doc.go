// Package diag описывает ошибки лексера: код, сообщение и span.
//
// Лексер пишет через Reporter; BagReporter складывает всё в Bag с лимитом,
// сортировкой и дедупликацией. FormatOne даёт строку вида
// "error CODE path:line:col message" для команды tokenize.
//
// Пакет не делает IO. Орфографические находки сюда не относятся: это
// check.Suggestion.
package diag
