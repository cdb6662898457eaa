package mysql

// Schema DDL is applied idempotently by EnsureSchema; prices and availability
// carry the uniqueness constraints the domain requires (one price per
// (rate_id, date), one availability record per (room_type_id, date)).
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS hotels (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		stars INT NOT NULL,
		city VARCHAR(128) NOT NULL,
		features JSON NULL,
		KEY idx_hotels_city (city)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS room_types (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		hotel_id BIGINT NOT NULL,
		name VARCHAR(128) NOT NULL,
		capacity INT NOT NULL,
		beds JSON NULL,
		features JSON NULL,
		KEY idx_room_types_hotel (hotel_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS rate_plans (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		hotel_id BIGINT NOT NULL,
		room_type_id BIGINT NOT NULL,
		title VARCHAR(128) NOT NULL,
		meal VARCHAR(8) NOT NULL,
		refundable TINYINT(1) NOT NULL,
		cancel_before_days INT NOT NULL,
		KEY idx_rate_plans_room_type (room_type_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS prices (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		rate_id BIGINT NOT NULL,
		date CHAR(10) NOT NULL,
		amount INT NOT NULL,
		currency CHAR(3) NOT NULL,
		UNIQUE KEY uq_prices_rate_date (rate_id, date)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS availability (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		room_type_id BIGINT NOT NULL,
		date CHAR(10) NOT NULL,
		available INT NOT NULL,
		UNIQUE KEY uq_availability_room_date (room_type_id, date)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS events (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		ts VARCHAR(40) NOT NULL,
		name VARCHAR(32) NOT NULL,
		payload JSON NULL,
		KEY idx_events_name (name)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

const (
	upsertHotelSQL = `INSERT INTO hotels (id, name, stars, city, features)
		VALUES (?,?,?,?,?)
		ON DUPLICATE KEY UPDATE name=VALUES(name), stars=VALUES(stars), city=VALUES(city), features=VALUES(features)`

	upsertRoomTypeSQL = `INSERT INTO room_types (id, hotel_id, name, capacity, beds, features)
		VALUES (?,?,?,?,?,?)
		ON DUPLICATE KEY UPDATE hotel_id=VALUES(hotel_id), name=VALUES(name), capacity=VALUES(capacity),
			beds=VALUES(beds), features=VALUES(features)`

	upsertRatePlanSQL = `INSERT INTO rate_plans (id, hotel_id, room_type_id, title, meal, refundable, cancel_before_days)
		VALUES (?,?,?,?,?,?,?)
		ON DUPLICATE KEY UPDATE hotel_id=VALUES(hotel_id), room_type_id=VALUES(room_type_id), title=VALUES(title),
			meal=VALUES(meal), refundable=VALUES(refundable), cancel_before_days=VALUES(cancel_before_days)`

	upsertPriceSQL = `INSERT INTO prices (rate_id, date, amount, currency)
		VALUES (?,?,?,?)
		ON DUPLICATE KEY UPDATE amount=VALUES(amount), currency=VALUES(currency)`

	upsertAvailabilitySQL = `INSERT INTO availability (room_type_id, date, available)
		VALUES (?,?,?)
		ON DUPLICATE KEY UPDATE available=VALUES(available)`

	insertEventSQL = `INSERT INTO events (ts, name, payload) VALUES (?,?,?)`

	selectHotelsSQL       = `SELECT id, name, stars, city, features FROM hotels ORDER BY id`
	selectRoomTypesSQL    = `SELECT id, hotel_id, name, capacity, beds, features FROM room_types ORDER BY id`
	selectRatePlansSQL    = `SELECT id, hotel_id, room_type_id, title, meal, refundable, cancel_before_days FROM rate_plans ORDER BY id`
	selectPricesSQL       = `SELECT id, rate_id, date, amount, currency FROM prices ORDER BY id`
	selectAvailabilitySQL = `SELECT id, room_type_id, date, available FROM availability ORDER BY id`
)
