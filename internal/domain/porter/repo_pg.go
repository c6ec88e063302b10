package porter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ db queryable }

// NewRepoPG returns a Repository backed by the porter_request table.
func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{db: pool}
}

const porterCols = `id, created_at, updated_at,
	requester_department_id, requester_name, requester_phone, requester_user_id,
	patient_hn, patient_name, patient_conditions,
	pickup_building_id, pickup_department_id, pickup_room_bed,
	delivery_building_id, delivery_department_id, delivery_room_bed,
	requested_at, urgency_level, vehicle_type, has_vehicle, return_trip,
	transport_reason, equipment, special_notes, status,
	assigned_to_id, accepted_by_id, cancelled_by_id,
	accepted_at, completed_at, cancelled_at, cancelled_reason,
	pickup_at, delivery_at, return_at`

func scanPorterRequest(row pgx.Row) (*PorterRequest, error) {
	var (
		r         PorterRequest
		equipment []string
		urgency   string
		vehicle   string
		status    string
	)
	err := row.Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt,
		&r.RequesterDepartmentID, &r.RequesterName, &r.RequesterPhone, &r.RequesterUserID,
		&r.PatientHN, &r.PatientName, &r.PatientConditions,
		&r.Pickup.BuildingID, &r.Pickup.DepartmentID, &r.Pickup.RoomBed,
		&r.Delivery.BuildingID, &r.Delivery.DepartmentID, &r.Delivery.RoomBed,
		&r.RequestedAt, &urgency, &vehicle, &r.HasVehicle, &r.ReturnTrip,
		&r.TransportReason, &equipment, &r.SpecialNotes, &status,
		&r.AssignedToID, &r.AcceptedByID, &r.CancelledByID,
		&r.AcceptedAt, &r.CompletedAt, &r.CancelledAt, &r.CancelledReason,
		&r.PickupAt, &r.DeliveryAt, &r.ReturnAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	r.UrgencyLevel = ParseUrgency(urgency)
	r.VehicleType = ParseVehicleType(vehicle)
	r.Status = ParseStatus(status)
	r.Equipment = ParseEquipment(equipment)
	return &r, nil
}

func equipmentStrings(items []Equipment) []string {
	out := make([]string, len(items))
	for i, e := range items {
		out[i] = string(e)
	}
	return out
}

func (r *repoPG) Create(ctx context.Context, p *PorterRequest) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx, `
		INSERT INTO porter_request (id,
			requester_department_id, requester_name, requester_phone, requester_user_id,
			patient_hn, patient_name, patient_conditions,
			pickup_building_id, pickup_department_id, pickup_room_bed,
			delivery_building_id, delivery_department_id, delivery_room_bed,
			requested_at, urgency_level, vehicle_type, has_vehicle, return_trip,
			transport_reason, equipment, special_notes, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23)
		RETURNING created_at, updated_at`,
		p.ID,
		p.RequesterDepartmentID, p.RequesterName, p.RequesterPhone, p.RequesterUserID,
		p.PatientHN, p.PatientName, p.PatientConditions,
		p.Pickup.BuildingID, p.Pickup.DepartmentID, p.Pickup.RoomBed,
		p.Delivery.BuildingID, p.Delivery.DepartmentID, p.Delivery.RoomBed,
		p.RequestedAt, string(p.UrgencyLevel), string(p.VehicleType), p.HasVehicle, p.ReturnTrip,
		p.TransportReason, equipmentStrings(p.Equipment), p.SpecialNotes, string(p.Status))
	return row.Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*PorterRequest, error) {
	return scanPorterRequest(r.db.QueryRow(ctx, `SELECT `+porterCols+` FROM porter_request WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, p *PorterRequest, expected Status) error {
	row := r.db.QueryRow(ctx, `
		UPDATE porter_request SET
			requester_department_id=$3, requester_name=$4, requester_phone=$5,
			patient_hn=$6, patient_name=$7, patient_conditions=$8,
			pickup_building_id=$9, pickup_department_id=$10, pickup_room_bed=$11,
			delivery_building_id=$12, delivery_department_id=$13, delivery_room_bed=$14,
			requested_at=$15, urgency_level=$16, vehicle_type=$17, has_vehicle=$18, return_trip=$19,
			transport_reason=$20, equipment=$21, special_notes=$22, status=$23,
			assigned_to_id=$24, accepted_by_id=$25, cancelled_by_id=$26,
			accepted_at=$27, completed_at=$28, cancelled_at=$29, cancelled_reason=$30,
			updated_at=NOW()
		WHERE id = $1 AND status = $2
		RETURNING updated_at`,
		p.ID, string(expected),
		p.RequesterDepartmentID, p.RequesterName, p.RequesterPhone,
		p.PatientHN, p.PatientName, p.PatientConditions,
		p.Pickup.BuildingID, p.Pickup.DepartmentID, p.Pickup.RoomBed,
		p.Delivery.BuildingID, p.Delivery.DepartmentID, p.Delivery.RoomBed,
		p.RequestedAt, string(p.UrgencyLevel), string(p.VehicleType), p.HasVehicle, p.ReturnTrip,
		p.TransportReason, equipmentStrings(p.Equipment), p.SpecialNotes, string(p.Status),
		p.AssignedToID, p.AcceptedByID, p.CancelledByID,
		p.AcceptedAt, p.CompletedAt, p.CancelledAt, p.CancelledReason)
	err := row.Scan(&p.UpdatedAt)
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM porter_request WHERE id = $1)`, p.ID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return ErrStaleStatus
}

func (r *repoPG) UpdateTimestamps(ctx context.Context, id uuid.UUID, patch TimestampPatch) (*PorterRequest, error) {
	return scanPorterRequest(r.db.QueryRow(ctx, `
		UPDATE porter_request SET
			pickup_at = COALESCE($2, pickup_at),
			delivery_at = COALESCE($3, delivery_at),
			return_at = COALESCE($4, return_at),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+porterCols,
		id, patch.PickupAt, patch.DeliveryAt, patch.ReturnAt))
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM porter_request WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) List(ctx context.Context, filter ListFilter, limit, offset int) ([]*PorterRequest, int, error) {
	where, args := listWhere(filter)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM porter_request`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	n := len(args)
	args = append(args, limit, offset)
	rows, err := r.db.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM porter_request%s ORDER BY requested_at DESC, created_at DESC LIMIT $%d OFFSET $%d`,
			porterCols, where, n+1, n+2),
		args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*PorterRequest
	for rows.Next() {
		p, err := scanPorterRequest(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, rows.Err()
}

func listWhere(f ListFilter) (string, []interface{}) {
	var (
		clauses []string
		args    []interface{}
	)
	add := func(clause string, v interface{}) {
		args = append(args, v)
		clauses = append(clauses, fmt.Sprintf(clause, len(args)))
	}
	if f.Status != nil {
		if *f.Status == StatusWaiting {
			add("status = ANY($%d)", []string{string(StatusWaitingCenter), string(StatusWaitingAccept)})
		} else {
			add("status = $%d", string(*f.Status))
		}
	}
	if f.UrgencyLevel != nil {
		add("urgency_level = $%d", string(*f.UrgencyLevel))
	}
	if f.AssignedToID != nil {
		add("assigned_to_id = $%d", *f.AssignedToID)
	}
	if f.RequesterUserID != nil {
		add("requester_user_id = $%d", *f.RequesterUserID)
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}
