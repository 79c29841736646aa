package listing

// Features 房源物理特徵
//
// 所有欄位皆為選填；指標為 nil 表示未提供。
// 建構約束：所有已提供的數值必須 >= 0。
type Features struct {
	Bedrooms         *int
	Bathrooms        *int
	ParkingSpots     *int
	ConstructionArea *float64 // 建築面積（平方公尺）
	LandArea         *float64 // 土地面積（平方公尺）
	Levels           *int
	YearBuilt        *int
	Floor            *int
}

// Validate 驗證所有已提供的數值非負
func (f Features) Validate() error {
	check := func(field string, v *int) error {
		if v != nil && *v < 0 {
			return ErrInvalidValue.WithContext("field", field, "value", *v)
		}
		return nil
	}
	checkF := func(field string, v *float64) error {
		if v != nil && *v < 0 {
			return ErrInvalidValue.WithContext("field", field, "value", *v)
		}
		return nil
	}

	for _, err := range []error{
		check("bedrooms", f.Bedrooms),
		check("bathrooms", f.Bathrooms),
		check("parking_spots", f.ParkingSpots),
		checkF("construction_area", f.ConstructionArea),
		checkF("land_area", f.LandArea),
		check("levels", f.Levels),
		check("year_built", f.YearBuilt),
		check("floor", f.Floor),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}
