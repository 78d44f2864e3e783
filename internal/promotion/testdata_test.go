package promotion

func promoted(dept string) Record {
	return Record{Department: dept, Region: "region_1", Gender: "Male", RecruitmentChannel: "other", KPIsMet: FlagYes, AwardsWon: FlagNo, Promoted: FlagYes}
}

func notPromoted(dept string) Record {
	r := promoted(dept)
	r.Promoted = FlagNo
	return r
}
