package database

import "context"

// QueryDef pairs a human-readable label with a fixed read-only statement.
// The catalog is process-wide read-only state; nothing mutates it after
// process start.
type QueryDef struct {
	Label string
	SQL   string
}

var catalogQueries = []QueryDef{
	{
		Label: "Least Popular Treatments",
		SQL: `
			SELECT type, COUNT(*) AS num_treatments
			FROM Treatment
			GROUP BY type
			HAVING COUNT(*) <= 3
			ORDER BY num_treatments DESC
		`,
	},
	{
		Label: "Patients with Both Treatments & Prescriptions",
		SQL: `
			SELECT p.patient_id, p.full_name
			FROM Patient p
			JOIN Appointment a ON p.patient_id = a.patient_id
			JOIN Dental_Action da ON a.appointment_id = da.appointment_id
			JOIN Treatment t ON da.dental_action_id = t.dental_action_id
			INTERSECT
			SELECT p.patient_id, p.full_name
			FROM Patient p
			JOIN Appointment a ON p.patient_id = a.patient_id
			JOIN Dental_Action da ON a.appointment_id = da.appointment_id
			JOIN Prescription pr ON da.dental_action_id = pr.dental_action_id
		`,
	},
	{
		Label: "Patients with Appointments but No Bills",
		SQL: `
			SELECT DISTINCT p.patient_id, p.full_name
			FROM Patient p
			JOIN Appointment a ON p.patient_id = a.patient_id
			WHERE NOT EXISTS (
				SELECT 1
				FROM Dental_Action da
				JOIN Bill b ON da.dental_action_id = b.dental_action_id
				WHERE da.appointment_id = a.appointment_id
			)
		`,
	},
	{
		Label: "Most Expensive Dental Actions",
		SQL: `
			SELECT p.full_name, MAX(da.cost) AS highest_cost
			FROM Dental_Action da
			JOIN Appointment a ON da.appointment_id = a.appointment_id
			JOIN Patient p ON a.patient_id = p.patient_id
			GROUP BY p.full_name
			ORDER BY highest_cost DESC
		`,
	},
	{
		Label: "Patients with Appointments but No Treatments",
		SQL: `
			SELECT DISTINCT p.patient_id, p.full_name
			FROM Patient p
			JOIN Appointment a ON p.patient_id = a.patient_id
			WHERE NOT EXISTS (
				SELECT 1
				FROM Dental_Action da
				JOIN Treatment t ON da.dental_action_id = t.dental_action_id
				WHERE da.appointment_id = a.appointment_id
			)
		`,
	},
	{
		Label: "Patient Billing Summary",
		SQL: `
			SELECT p.full_name,
			       COUNT(b.bill_id) AS num_bills,
			       SUM(b.total_amount) AS total_billed,
			       ROUND(AVG(b.total_amount), 2) AS avg_bill
			FROM Bill b
			JOIN Dental_Action da ON b.dental_action_id = da.dental_action_id
			JOIN Appointment a ON da.appointment_id = a.appointment_id
			JOIN Patient p ON a.patient_id = p.patient_id
			GROUP BY p.patient_id, p.full_name
			HAVING SUM(b.total_amount) > 0
			ORDER BY total_billed DESC
		`,
	},
	{
		Label: "Staff with Roles",
		SQL: `
			SELECT s.staff_id, s.name,
			       CASE
			           WHEN d.staff_id IS NOT NULL THEN 'Dentist (' || COALESCE(d.specialization, 'General') || ')'
			           WHEN asst.staff_id IS NOT NULL THEN 'Dental Assistant'
			           WHEN r.staff_id IS NOT NULL THEN 'Receptionist'
			           ELSE 'Unknown'
			       END AS role
			FROM Staff s
			LEFT JOIN Dentist d ON s.staff_id = d.staff_id
			LEFT JOIN Dental_Assistant asst ON s.staff_id = asst.staff_id
			LEFT JOIN Receptionist r ON s.staff_id = r.staff_id
			ORDER BY s.name
		`,
	},
	{
		Label: "Appointments with Assigned Staff",
		SQL: `
			SELECT a.appointment_id, p.full_name, a.appointment_datetime, a.status,
			       COALESCE(GROUP_CONCAT(s.name, ', '), '') AS assigned_staff
			FROM Appointment a
			JOIN Patient p ON a.patient_id = p.patient_id
			LEFT JOIN Appointment_Staff aps ON a.appointment_id = aps.appointment_id
			LEFT JOIN Staff s ON aps.staff_id = s.staff_id
			GROUP BY a.appointment_id, p.full_name, a.appointment_datetime, a.status
		`,
	},
	{
		Label: "Inventory Used by Dentists",
		SQL: `
			SELECT DISTINCT i.item_name, i.supplier, s.name AS dentist_name
			FROM Inventory i
			JOIN DentalAction_Inventory dai ON i.inventory_id = dai.inventory_id
			JOIN Dental_Action da ON dai.dental_action_id = da.dental_action_id
			JOIN Appointment a ON da.appointment_id = a.appointment_id
			JOIN Appointment_Staff aps ON a.appointment_id = aps.appointment_id
			JOIN Staff s ON aps.staff_id = s.staff_id
			JOIN Dentist d ON s.staff_id = d.staff_id
		`,
	},
	{
		Label: "Inventory Usage Report",
		SQL: `
			SELECT i.item_name, i.quantity AS current_stock,
			       COALESCE(SUM(dai.quantity_used), 0) AS total_used,
			       COUNT(DISTINCT dai.dental_action_id) AS actions_used_in
			FROM Inventory i
			LEFT JOIN DentalAction_Inventory dai ON i.inventory_id = dai.inventory_id
			GROUP BY i.inventory_id, i.item_name, i.quantity
			ORDER BY total_used DESC
		`,
	},
}

// CatalogLabels returns the catalog's labels in declaration order.
func CatalogLabels() []string {
	labels := make([]string, 0, len(catalogQueries))
	for _, q := range catalogQueries {
		labels = append(labels, q.Label)
	}
	return labels
}

// RunCatalogQuery executes the catalog entry with the given label.
func (dao *Database) RunCatalogQuery(ctx context.Context, label string) (Grid, error) {
	for _, q := range catalogQueries {
		if q.Label != label {
			continue
		}
		grid, err := dao.queryGrid(ctx, q.SQL)
		if err != nil {
			return Grid{}, wrapQueryErr(err)
		}
		return grid, nil
	}
	return Grid{}, UnknownQueryErr(label)
}
