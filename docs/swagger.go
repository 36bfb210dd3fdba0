// Package docs OEREB Extract Service API.
//
// Сервис выписок кадастра ограничений публичного права (ÖREB/RDPPF).
// По EGRID участка собирает выписку: темы, затрагивающие участок, темы без
// ограничений и темы без данных, ограничения с долями площади и длины,
// правовые документы.
//
// Основные возможности:
// - Выписка по EGRID с выбором языка и тем
// - Поиск EGRID по координатам или номеру участка
// - Описание тем, муниципалитетов и языков сервиса
//
//	Schemes: http, https
//	BasePath: /
//	Version: 2.0.0
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
