package availability

import (
	"strings"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
)

// attribution результат атрибуции бронирования к запрошенному автомобилю
type attribution int

const (
	// attrNone бронирование не относится к запрошенному автомобилю
	attrNone attribution = iota
	// attrSpecific бронирование привязано к конкретному экземпляру (id или госномер)
	attrSpecific
	// attrGeneric бронирование сопоставлено только по имени - считаем, что оно
	// консервативно занимает единицу общего пула
	attrGeneric
)

// nameMatchesLoosely регистронезависимое совпадение по подстроке в обе стороны.
// Нестрогое намеренно: легаси-записи хранят имя в свободной форме
// ("Urus" против "Lamborghini Urus Giallo").
func nameMatchesLoosely(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// attributeBooking решает, относится ли бронирование к запрошенному автомобилю.
//
// Политика сопоставления: стабильный идентификатор важнее госномера, госномер
// важнее имени. Если запрошен конкретный экземпляр (targetID), бронирования с
// ДРУГИМ конкретным идентификатором исключаются - они занимают другой
// автомобиль. Бронирования без идентификатора консервативно занимают
// единицу общего пула.
func attributeBooking(b *domain.Booking, requestedName string, targetID *int64, plate *string) attribution {
	if b.HasSpecificVehicle() {
		if targetID != nil {
			if *b.VehicleID == *targetID {
				return attrSpecific
			}
			return attrNone
		}
		// Конкретный экземпляр не запрошен - сопоставляем по имени
		if nameMatchesLoosely(b.VehicleName, requestedName) {
			return attrSpecific
		}
		return attrNone
	}

	if b.VehiclePlate != nil && plate != nil &&
		strings.EqualFold(strings.TrimSpace(*b.VehiclePlate), strings.TrimSpace(*plate)) {
		return attrSpecific
	}

	if nameMatchesLoosely(b.VehicleName, requestedName) {
		return attrGeneric
	}

	return attrNone
}

// rentalConflicts проверяет конфликт кандидатского интервала с существующим
// обязательством по правилу [s1,e1) против [s2, e2+буфер)
func rentalConflicts(candidate, existing domain.TimeRange) bool {
	return candidate.ConflictsWithBuffered(existing, domain.TurnaroundBuffer)
}

// carWashOverlaps строгое пересечение минутных интервалов одного дня.
// Буфер здесь не применяется: мойке не нужен turnaround-разрыв между
// клиентами (осознанное бизнес-отличие от аренды).
func carWashOverlaps(startA, durationA, startB, durationB int) bool {
	endA := startA + durationA
	endB := startB + durationB
	return startA < endB && endA > startB
}
