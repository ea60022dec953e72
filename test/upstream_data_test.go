package test

const testUpstreamToken = "integration-token"

const (
	upstreamSports = `{"status":"success","data":{"sports":[` +
		`{"id":1,"label":"Cycling (Sport)","color":null,"is_active":true,"has_workouts":true,"stopped_speed_threshold":1},` +
		`{"id":2,"label":"Hiking","color":"#aabbcc","is_active":true,"has_workouts":true,"stopped_speed_threshold":0.1}]}}`
	upstreamStats = `{"status":"success","data":{"statistics":{` +
		`"2021-05":{"1":{"average_speed":24,"total_workouts":2,"total_distance":10,"total_duration":3000,"total_ascent":150,"total_descent":100}},` +
		`"2021-07":{"2":{"average_speed":4,"total_workouts":1,"total_distance":6,"total_duration":5400,"total_ascent":420,"total_descent":410}}}}}`
	upstreamRecords = `{"status":"success","data":{"records":[` +
		`{"id":1,"record_type":"AS","sport_id":1,"user":"sam","value":18,"workout_date":"Sun, 07 Jul 2019 08:00:00 GMT","workout_id":"a"},` +
		`{"id":2,"record_type":"FD","sport_id":1,"user":"sam","value":23.5,"workout_date":"Sun, 07 Jul 2019 08:00:00 GMT","workout_id":"a"},` +
		`{"id":3,"record_type":"FD","sport_id":2,"user":"other","value":5,"workout_date":"Sun, 07 Jul 2019 08:00:00 GMT","workout_id":"b"}]}}`
)
