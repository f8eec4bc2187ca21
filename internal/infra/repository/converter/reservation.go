package converter

import (
	"locker-reservation/internal/domain/reservation"
	"locker-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// ReservationColumns matches the scan order of ScanReservation.
const ReservationColumns = `id, reservation_number, store_id, locker_serial, size_id,
	hardware_box_id, physical_box_id, delivery_token, user_token, user_token_used,
	start_at, end_at, counter, quantity, id_transaction, paid, client_email, mode, status, created_at`

type CreateReservationParams struct {
	ID            uuid.UUID
	Number        string
	StoreID       uuid.UUID
	LockerSerial  string
	SizeID        int32
	HardwareBoxID pgtype.Int4
	PhysicalBoxID pgtype.Int4
	DeliveryToken pgtype.Text
	Start         pgtype.Timestamptz
	End           pgtype.Timestamptz
	Counter       pgtype.Int4
	Quantity      int32
	TransactionID string
	Paid          bool
	ClientEmail   string
	Mode          string
	Status        string
	CreatedAt     pgtype.Timestamptz
}

// #nosec G115 -- size ids and quantities come from validated small integers
func ReservationToInfra(res *reservation.Reservation) CreateReservationParams {
	return CreateReservationParams{
		ID:            res.ID(),
		Number:        res.Number(),
		StoreID:       res.StoreID(),
		LockerSerial:  res.LockerSerial(),
		SizeID:        int32(res.SizeID()),
		HardwareBoxID: pgconv.IntPtrToPgtype(res.HardwareBoxID()),
		PhysicalBoxID: pgconv.IntPtrToPgtype(res.PhysicalBoxID()),
		DeliveryToken: pgconv.StringPtrToPgtype(res.DeliveryToken()),
		Start:         pgconv.TimeToPgtype(res.Period().Start()),
		End:           pgconv.TimeToPgtype(res.Period().End()),
		Counter:       pgconv.IntPtrToPgtype(res.Counter()),
		Quantity:      int32(res.Quantity()),
		TransactionID: res.TransactionID(),
		Paid:          res.Paid(),
		ClientEmail:   res.ClientEmail(),
		Mode:          string(res.Mode()),
		Status:        res.Status().String(),
		CreatedAt:     pgconv.TimeToPgtype(res.CreatedAt()),
	}
}

func ScanReservation(row pgx.Row) (reservation.Record, error) {
	var (
		rec                          reservation.Record
		sizeID, quantity             int32
		hardwareBoxID, physicalBoxID pgtype.Int4
		counter                      pgtype.Int4
		deliveryToken, userToken     pgtype.Text
		start, end, createdAt        pgtype.Timestamptz
		mode, status                 string
	)

	err := row.Scan(
		&rec.ID, &rec.Number, &rec.StoreID, &rec.LockerSerial, &sizeID,
		&hardwareBoxID, &physicalBoxID, &deliveryToken, &userToken, &rec.UserTokenUsed,
		&start, &end, &counter, &quantity, &rec.TransactionID, &rec.Paid, &rec.ClientEmail, &mode, &status, &createdAt,
	)
	if err != nil {
		return reservation.Record{}, err
	}

	rec.SizeID = int(sizeID)
	rec.Quantity = int(quantity)
	rec.HardwareBoxID = pgconv.IntPtrFromPgtype(hardwareBoxID)
	rec.PhysicalBoxID = pgconv.IntPtrFromPgtype(physicalBoxID)
	rec.Counter = pgconv.IntPtrFromPgtype(counter)
	rec.DeliveryToken = pgconv.StringPtrFromPgtype(deliveryToken)
	rec.UserToken = pgconv.StringPtrFromPgtype(userToken)
	rec.Start = start.Time
	rec.End = end.Time
	rec.CreatedAt = createdAt.Time
	rec.Mode = reservation.Mode(mode)
	rec.Status = reservation.Status(status)

	return rec, nil
}

func CollectReservations(rows pgx.Rows) ([]reservation.Record, error) {
	defer rows.Close()

	var out []reservation.Record
	for rows.Next() {
		rec, err := ScanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
