// Package seed owns the clinic schema: it creates, drops and populates the
// fifteen tables the rest of the application only ever reads through the
// catalog. The core packages never issue DDL; this is the one place that
// does.
package seed

import "database/sql"

// Tables in drop order (children before parents, to satisfy foreign keys).
var dropOrder = []string{
	"DentalAction_Inventory",
	"Inventory",
	"Bill",
	"Prescription",
	"Treatment",
	"Dental_Action",
	"Appointment_Staff",
	"Receptionist",
	"Dental_Assistant",
	"Dentist",
	"Staff_Schedule",
	"Staff",
	"Appointment",
	"Room",
	"Patient",
}

var createStatements = []string{
	`CREATE TABLE IF NOT EXISTS Patient (
		patient_id INTEGER PRIMARY KEY,
		full_name TEXT NOT NULL,
		date_of_birth TEXT,
		street TEXT,
		city TEXT,
		province TEXT,
		postal_code TEXT,
		gender TEXT,
		phone TEXT,
		email TEXT UNIQUE,
		medical_history TEXT,
		insurance TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS Room (
		room_number INTEGER PRIMARY KEY,
		room_type TEXT,
		capacity INTEGER DEFAULT 0,
		availability TEXT DEFAULT 'Y' CHECK (availability IN ('Y', 'N'))
	)`,
	`CREATE TABLE IF NOT EXISTS Staff (
		staff_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT,
		email TEXT,
		salary REAL
	)`,
	`CREATE TABLE IF NOT EXISTS Staff_Schedule (
		schedule_id INTEGER PRIMARY KEY,
		staff_id INTEGER NOT NULL,
		day_of_week TEXT NOT NULL,
		start_time TEXT,
		end_time TEXT,
		FOREIGN KEY (staff_id) REFERENCES Staff(staff_id)
	)`,
	`CREATE TABLE IF NOT EXISTS Dentist (
		staff_id INTEGER PRIMARY KEY,
		specialization TEXT,
		license_number TEXT,
		FOREIGN KEY (staff_id) REFERENCES Staff(staff_id)
	)`,
	`CREATE TABLE IF NOT EXISTS Dental_Assistant (
		staff_id INTEGER PRIMARY KEY,
		certification TEXT,
		FOREIGN KEY (staff_id) REFERENCES Staff(staff_id)
	)`,
	`CREATE TABLE IF NOT EXISTS Receptionist (
		staff_id INTEGER PRIMARY KEY,
		desk_number INTEGER,
		FOREIGN KEY (staff_id) REFERENCES Staff(staff_id)
	)`,
	`CREATE TABLE IF NOT EXISTS Appointment (
		appointment_id INTEGER PRIMARY KEY,
		patient_id INTEGER NOT NULL,
		room_number INTEGER NOT NULL,
		appointment_datetime TEXT NOT NULL,
		status TEXT DEFAULT 'SCHEDULED' CHECK (status IN ('SCHEDULED', 'COMPLETED', 'CANCELLED')),
		FOREIGN KEY (patient_id) REFERENCES Patient(patient_id),
		FOREIGN KEY (room_number) REFERENCES Room(room_number)
	)`,
	`CREATE TABLE IF NOT EXISTS Appointment_Staff (
		appointment_id INTEGER NOT NULL,
		staff_id INTEGER NOT NULL,
		PRIMARY KEY (appointment_id, staff_id),
		FOREIGN KEY (appointment_id) REFERENCES Appointment(appointment_id),
		FOREIGN KEY (staff_id) REFERENCES Staff(staff_id)
	)`,
	`CREATE TABLE IF NOT EXISTS Dental_Action (
		dental_action_id INTEGER PRIMARY KEY,
		appointment_id INTEGER NOT NULL,
		cost REAL,
		FOREIGN KEY (appointment_id) REFERENCES Appointment(appointment_id)
	)`,
	`CREATE TABLE IF NOT EXISTS Treatment (
		treatment_id INTEGER PRIMARY KEY,
		dental_action_id INTEGER NOT NULL,
		description TEXT,
		type TEXT,
		FOREIGN KEY (dental_action_id) REFERENCES Dental_Action(dental_action_id)
	)`,
	`CREATE TABLE IF NOT EXISTS Prescription (
		prescription_id INTEGER PRIMARY KEY,
		dental_action_id INTEGER NOT NULL,
		medication TEXT NOT NULL,
		dosage TEXT,
		FOREIGN KEY (dental_action_id) REFERENCES Dental_Action(dental_action_id)
	)`,
	`CREATE TABLE IF NOT EXISTS Inventory (
		inventory_id INTEGER PRIMARY KEY,
		item_name TEXT NOT NULL,
		supplier TEXT,
		quantity INTEGER DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS DentalAction_Inventory (
		dental_action_id INTEGER NOT NULL,
		inventory_id INTEGER NOT NULL,
		quantity_used INTEGER DEFAULT 1,
		PRIMARY KEY (dental_action_id, inventory_id),
		FOREIGN KEY (dental_action_id) REFERENCES Dental_Action(dental_action_id),
		FOREIGN KEY (inventory_id) REFERENCES Inventory(inventory_id)
	)`,
	`CREATE TABLE IF NOT EXISTS Bill (
		bill_id INTEGER PRIMARY KEY,
		dental_action_id INTEGER NOT NULL,
		total_amount REAL,
		status TEXT DEFAULT 'UNPAID' CHECK (status IN ('UNPAID', 'PARTIALLY_PAID', 'PAID')),
		issue_date TEXT,
		FOREIGN KEY (dental_action_id) REFERENCES Dental_Action(dental_action_id)
	)`,
}

var sampleData = []string{
	// Patients
	`INSERT OR IGNORE INTO Patient VALUES (1, 'John Doe', '2000-01-01', '123 Main St', 'Toronto', 'ON', 'M5V1E3', 'Male', '647-123-1234', 'john.doe@email.com', 'No allergies', 'SunLife')`,
	`INSERT OR IGNORE INTO Patient VALUES (2, 'Jane Smith', '1995-05-15', '456 Oak Ave', 'Toronto', 'ON', 'M5V2B2', 'Female', '416-555-1234', 'jane.smith@email.com', 'Asthma', 'Manulife')`,
	`INSERT OR IGNORE INTO Patient VALUES (3, 'Alice Wong', '1988-09-30', '789 Pine Rd', 'Markham', 'ON', 'L3R4K5', 'Female', '905-222-9876', 'alice.wong@email.com', NULL, 'GreenShield')`,

	// Rooms
	`INSERT OR IGNORE INTO Room VALUES (100, 'Surgery', 1, 'Y')`,
	`INSERT OR IGNORE INTO Room VALUES (101, 'Consultation', 1, 'Y')`,

	// Staff and roles
	`INSERT OR IGNORE INTO Staff VALUES (200, 'Dr. Emily Carter', '416-777-0001', 'emily.carter@clinic.com', 145000)`,
	`INSERT OR IGNORE INTO Staff VALUES (201, 'Mark Lee', '416-777-0002', 'mark.lee@clinic.com', 58000)`,
	`INSERT OR IGNORE INTO Staff VALUES (202, 'Sara Kim', '416-777-0003', 'sara.kim@clinic.com', 47000)`,
	`INSERT OR IGNORE INTO Dentist VALUES (200, 'Orthodontics', 'ON-D-4821')`,
	`INSERT OR IGNORE INTO Dental_Assistant VALUES (201, 'Level II')`,
	`INSERT OR IGNORE INTO Receptionist VALUES (202, 1)`,
	`INSERT OR IGNORE INTO Staff_Schedule VALUES (300, 200, 'Monday', '09:00', '17:00')`,
	`INSERT OR IGNORE INTO Staff_Schedule VALUES (301, 201, 'Monday', '08:30', '16:30')`,

	// Appointments
	`INSERT OR IGNORE INTO Appointment VALUES (1000, 1, 100, '2024-01-15 09:30:00', 'COMPLETED')`,
	`INSERT OR IGNORE INTO Appointment VALUES (1001, 2, 101, '2024-01-16 10:00:00', 'SCHEDULED')`,
	`INSERT OR IGNORE INTO Appointment VALUES (1002, 3, 101, '2024-01-17 14:00:00', 'SCHEDULED')`,
	`INSERT OR IGNORE INTO Appointment_Staff VALUES (1000, 200)`,
	`INSERT OR IGNORE INTO Appointment_Staff VALUES (1000, 201)`,
	`INSERT OR IGNORE INTO Appointment_Staff VALUES (1001, 200)`,

	// Dental actions
	`INSERT OR IGNORE INTO Dental_Action VALUES (400, 1000, 150.00)`,
	`INSERT OR IGNORE INTO Dental_Action VALUES (401, 1001, 200.00)`,
	`INSERT OR IGNORE INTO Dental_Action VALUES (402, 1002, 90.00)`,

	// Treatments
	`INSERT OR IGNORE INTO Treatment VALUES (500, 400, 'Teeth Cleaning', 'Hygiene')`,
	`INSERT OR IGNORE INTO Treatment VALUES (501, 401, 'Root Canal', 'Surgery')`,
	`INSERT OR IGNORE INTO Treatment VALUES (502, 400, 'Fluoride Application', 'Hygiene')`,
	`INSERT OR IGNORE INTO Treatment VALUES (503, 401, 'Wisdom Tooth Extraction', 'Surgery')`,

	// Prescriptions
	`INSERT OR IGNORE INTO Prescription VALUES (600, 400, 'Amoxicillin', '500mg 3x daily')`,
	`INSERT OR IGNORE INTO Prescription VALUES (601, 401, 'Ibuprofen', '400mg as needed')`,

	// Bills
	`INSERT OR IGNORE INTO Bill VALUES (800, 400, 150.00, 'PAID', '2024-01-15')`,
	`INSERT OR IGNORE INTO Bill VALUES (801, 401, 200.00, 'UNPAID', '2024-01-16')`,

	// Inventory
	`INSERT OR IGNORE INTO Inventory VALUES (700, 'Composite Resin', 'DentSupply Co', 40)`,
	`INSERT OR IGNORE INTO Inventory VALUES (701, 'Local Anesthetic', 'MediCorp', 25)`,
	`INSERT OR IGNORE INTO Inventory VALUES (702, 'Nitrile Gloves', 'SafeHands Ltd', 500)`,
	`INSERT OR IGNORE INTO DentalAction_Inventory VALUES (400, 700, 2)`,
	`INSERT OR IGNORE INTO DentalAction_Inventory VALUES (400, 701, 1)`,
	`INSERT OR IGNORE INTO DentalAction_Inventory VALUES (401, 701, 1)`,
}

// CreateAll creates every clinic table that does not already exist.
func CreateAll(db *sql.DB) error {
	for _, stmt := range createStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// DropAll removes every clinic table, children first.
func DropAll(db *sql.DB) error {
	for _, table := range dropOrder {
		if _, err := db.Exec("DROP TABLE IF EXISTS " + table); err != nil {
			return err
		}
	}
	return nil
}

// Populate inserts the sample data set. Rows that already exist are left
// alone, so populating twice is harmless.
func Populate(db *sql.DB) error {
	for _, stmt := range sampleData {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Reset drops, recreates and repopulates the whole schema.
func Reset(db *sql.DB) error {
	if err := DropAll(db); err != nil {
		return err
	}
	if err := CreateAll(db); err != nil {
		return err
	}
	return Populate(db)
}
